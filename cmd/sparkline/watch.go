package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/sparkline-go/pkg/sparkline"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/redraw"
)

func newWatchCmd() *cobra.Command {
	var (
		opts  optionFlags
		in    inputFlags
		out   outputFlags
		frame time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <input>",
		Short: "Re-render a sparkline whenever its input file changes",
		Long: `Watch an input file and re-render the sparkline when it changes.
Bursts of changes are coalesced so at most one render runs per frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out.outputPath == "" {
				return fmt.Errorf("watch requires --output")
			}
			if err := out.validate(); err != nil {
				return err
			}
			options, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			in.inputPath = args[0]

			pass := func(ctx context.Context) error {
				values, err := in.load(cmd, nil)
				if err != nil {
					return fmt.Errorf("failed to read values: %w", err)
				}
				s, err := sparkline.Render(values, options)
				if err != nil {
					return err
				}
				data, err := out.encode(s)
				if err != nil {
					return err
				}
				if err := out.write(cmd.OutOrStdout(), data); err != nil {
					return err
				}
				logger.Info("rendered", zap.String("output", out.outputPath), zap.Int("points", len(s.Points)))
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchFile(ctx, args[0], redraw.New(pass, redraw.WithFrame(frame), redraw.WithLogger(logger)))
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&in.jsonPath, "json-path", "", "gjson path of the value array in JSON input")
	cmd.Flags().StringVar(&in.cellRange, "range", "", "Cell range for .xlsx input")
	out.register(cmd, "svg")
	cmd.Flags().DurationVar(&frame, "frame", 100*time.Millisecond, "Coalescing interval between renders")
	return cmd
}

// watchFile invalidates sched on every change to path until ctx is done.
// The parent directory is watched so editors that replace the file on save
// keep triggering renders.
func watchFile(ctx context.Context, path string, sched *redraw.Scheduler) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logger.Info("watching", zap.String("path", absPath))

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = sched.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
		logger.Info("watch stopped", zap.Int64("passes", sched.Passes()))
	}()

	// initial render
	sched.Invalidate()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				logger.Debug("input changed", zap.String("op", event.Op.String()))
				sched.Invalidate()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
