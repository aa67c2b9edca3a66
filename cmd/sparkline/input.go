package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/sparkline-go/pkg/sparkline"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/source"
)

// inputFlags selects where observations are read from.
type inputFlags struct {
	inputPath string
	jsonPath  string
	cellRange string
}

func (in *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.inputPath, "input", "i", "", "Read values from a file (text, .json, or .xlsx); - for stdin")
	cmd.Flags().StringVar(&in.jsonPath, "json-path", "", "gjson path of the value array in JSON input")
	cmd.Flags().StringVar(&in.cellRange, "range", "", "Cell range for .xlsx input (default: detected series on the first sheet)")
}

// load reads values from args when given, otherwise from the input file or stdin.
func (in *inputFlags) load(cmd *cobra.Command, args []string) ([]float64, error) {
	if len(args) > 0 {
		return source.ParseArgs(args)
	}

	path := in.inputPath
	if path == "" || path == "-" {
		return in.parse(cmd.InOrStdin(), "")
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return in.loadWorkbook(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return in.parse(f, path)
}

func (in *inputFlags) parse(r io.Reader, path string) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	isJSON := in.jsonPath != "" || strings.EqualFold(filepath.Ext(path), ".json") ||
		bytes.HasPrefix(trimmed, []byte("[")) || bytes.HasPrefix(trimmed, []byte("{"))
	if isJSON {
		return source.ParseJSON(trimmed, in.jsonPath)
	}
	return source.ParseValues(bytes.NewReader(data))
}

func (in *inputFlags) loadWorkbook(path string) ([]float64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	ref := in.cellRange
	if ref == "" {
		if ref, err = source.DetectSeries(f, sheets[0], source.DefaultSeriesParams()); err != nil {
			return nil, err
		}
		logger.Info("detected series", zap.String("file", path), zap.String("range", ref))
	}
	return source.ReadRange(f, ref, sheets[0])
}

func zapOptions(opts sparkline.Options) []zap.Field {
	fields := []zap.Field{
		zap.Float64("width", opts.Width),
		zap.Float64("height", opts.Height),
		zap.Int("limit", opts.Limit),
		zap.String("display", string(opts.DisplayType)),
		zap.String("reference_line", opts.ReferenceLine),
		zap.Bool("normal_band", opts.NormalBand),
	}
	if opts.Min != nil {
		fields = append(fields, zap.Float64("min", *opts.Min))
	}
	if opts.Max != nil {
		fields = append(fields, zap.Float64("max", *opts.Max))
	}
	return fields
}
