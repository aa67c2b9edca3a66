package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/sparkline-go/pkg/sparkline"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/output"
)

// outputFlags selects the format and destination of a rendered sparkline.
type outputFlags struct {
	outputPath string
	format     string
	pretty     bool
	color      bool
}

func (out *outputFlags) register(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringVarP(&out.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&out.format, "format", "f", defaultFormat, "Output format: svg, json, or text")
	cmd.Flags().BoolVar(&out.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&out.color, "color", true, "Color the direction arrow in text output")
}

func (out *outputFlags) validate() error {
	switch out.format {
	case "svg", "json", "text":
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be svg, json, or text)", out.format)
}

// encode renders s in the selected format.
func (out *outputFlags) encode(s *models.Sparkline) ([]byte, error) {
	switch out.format {
	case "json":
		return output.ToJSON(s, out.pretty)
	case "text":
		return []byte(output.ToText(s, out.color) + "\n"), nil
	default:
		var buf bytes.Buffer
		output.ToSVG(&buf, s, output.DefaultSVGStyle())
		return buf.Bytes(), nil
	}
}

// write sends data to the output file, or to w when no file was given.
func (out *outputFlags) write(w io.Writer, data []byte) error {
	if out.outputPath == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(out.outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newRenderCmd() *cobra.Command {
	var (
		opts optionFlags
		in   inputFlags
		out  outputFlags
	)

	cmd := &cobra.Command{
		Use:   "render [values...]",
		Short: "Render a sparkline from numbers",
		Long: `Render a sparkline from numbers given as arguments, read from a file
(--input), or piped on stdin. Values may be separated by commas, spaces or
newlines; JSON arrays and Excel ranges are also accepted.`,
		Example: `  sparkline render 1 5 3 8 2 --reference-line median -o trend.svg
  cat metrics.json | sparkline render --json-path series.0.values -f text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			options, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			values, err := in.load(cmd, args)
			if err != nil {
				return fmt.Errorf("failed to read values: %w", err)
			}
			logger.Debug("values loaded", zap.Int("count", len(values)))

			s, err := sparkline.Render(values, options)
			if err != nil {
				return err
			}

			data, err := out.encode(s)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return out.write(cmd.OutOrStdout(), data)
		},
	}

	opts.register(cmd)
	in.register(cmd)
	out.register(cmd, "svg")
	return cmd
}
