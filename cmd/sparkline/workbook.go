package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/sparkline-go/pkg/sparkline"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/layout"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/output"
)

func newWorkbookCmd() *cobra.Command {
	var (
		opts   optionFlags
		out    outputFlags
		svgDir string
	)

	cmd := &cobra.Command{
		Use:   "workbook <input.xlsx>",
		Short: "Render the native sparklines of an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			options, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			wb, err := sparkline.RenderWorkbook(inputPath, options)
			if err != nil {
				return fmt.Errorf("rendering failed: %w", err)
			}
			for sheetName, rendered := range wb.Sheets {
				for _, r := range rendered {
					if r.Error != "" {
						logger.Warn("sparkline skipped",
							zap.String("sheet", sheetName),
							zap.String("location", r.Ref.Location),
							zap.String("error", r.Error))
					}
				}
			}

			if svgDir != "" {
				if err := writeSVGFiles(wb, svgDir); err != nil {
					return fmt.Errorf("failed to write svg files: %w", err)
				}
				if out.outputPath == "" {
					return nil
				}
			}

			jsonData, err := output.ToJSON(wb, out.pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return out.write(cmd.OutOrStdout(), append(jsonData, '\n'))
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&out.outputPath, "output", "o", "", "Output file path for JSON (default: stdout)")
	cmd.Flags().BoolVar(&out.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&svgDir, "svg-dir", "", "Directory for per-sparkline SVG files")
	return cmd
}

func writeSVGFiles(wb *models.WorkbookSparklines, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, rendered := range wb.Sheets {
		for _, r := range rendered {
			if r.Sparkline == nil {
				continue
			}

			var buf bytes.Buffer
			output.ToSVG(&buf, r.Sparkline, output.DefaultSVGStyle())

			filename := filepath.Join(dir, fmt.Sprintf("%s_%s.svg", safeFileName(sheetName), r.Ref.Location))
			if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
				return err
			}
			logger.Debug("wrote svg", zap.String("file", filename))
		}
	}

	return nil
}

func safeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, s)
}

func newExportCmd() *cobra.Command {
	var (
		opts    optionFlags
		in      inputFlags
		sheet   string
		row     int
		markers bool
	)

	cmd := &cobra.Command{
		Use:   "export <output.xlsx> [values...]",
		Short: "Write values and a native Excel sparkline into a workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			values, err := in.load(cmd, args[1:])
			if err != nil {
				return fmt.Errorf("failed to read values: %w", err)
			}
			values = layout.Truncate(values, options.Limit)

			sparkType := "line"
			if options.DisplayType == sparkline.DisplayBar {
				sparkType = "column"
			}

			ref, err := output.ToWorkbook(args[0], values, output.WorkbookOptions{
				Sheet:   sheet,
				Row:     row,
				Type:    sparkType,
				Markers: markers,
			})
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			logger.Info("sparkline exported",
				zap.String("file", args[0]),
				zap.String("range", ref.DataRange),
				zap.String("location", ref.Location))
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", ref.DataRange, ref.Location)
			return nil
		},
	}

	opts.register(cmd)
	in.register(cmd)
	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "Target sheet (created when missing)")
	cmd.Flags().IntVar(&row, "row", 1, "Row the values are written to")
	cmd.Flags().BoolVar(&markers, "markers", false, "Show point markers on line sparklines")
	return cmd
}
