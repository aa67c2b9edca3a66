package sparkline

import (
	"path/filepath"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/layout"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/source"
	"github.com/xuri/excelize/v2"
)

// Render computes the layout and overlays for data.
// Empty data yields a sparkline with no points and no overlays.
func Render(data []float64, opts Options) (*models.Sparkline, error) {
	if err := opts.Validate(); err != nil {
		return nil, NewRenderError(StageOptions, err)
	}

	s := &models.Sparkline{
		Width:       opts.Width,
		Height:      opts.Height,
		DisplayType: string(opts.DisplayType),
		DrawLine:    opts.ShouldDrawLine(),
		DrawBars:    opts.ShouldDrawBars(),
		PointRadius: opts.PointRadius,
		Points:      []models.Point{},
		Direction:   models.DirectionSame,
	}

	l, err := layout.MapPoints(data, opts.params())
	if err != nil {
		return nil, NewRenderError(StagePoints, err)
	}
	if len(l.Points) == 0 {
		return s, nil
	}

	s.Points = l.Points
	s.Min = l.Min
	s.Max = l.Max
	s.Direction = layout.LastDirection(l.Points)

	if opts.HasReferenceLine() {
		y, ok, err := layout.ReferenceLine(opts.ReferenceLine, l.Points)
		if err != nil {
			return nil, NewRenderError(StageReferenceLine, err)
		}
		if ok {
			s.ReferenceLine = &y
		}
	}

	if opts.NormalBand {
		band, err := layout.NormalBand(l.Points)
		if err != nil {
			return nil, NewRenderError(StageNormalBand, err)
		}
		s.Band = &band
	}

	return s, nil
}

// RenderWorkbook renders every native sparkline found in an Excel file.
// Group settings (type and manual bounds) are layered over opts. A sparkline
// whose values cannot be read or rendered is kept with its error recorded.
func RenderWorkbook(path string, opts Options) (*models.WorkbookSparklines, error) {
	groups, err := source.ExtractSparklineGroups(path)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := make(map[string][]models.RenderedSparkline)
	for sheetName, sheetGroups := range groups {
		var rendered []models.RenderedSparkline
		for _, g := range sheetGroups {
			groupOpts := applyGroup(opts, g)
			for _, ref := range g.Sparklines {
				rendered = append(rendered, renderRef(f, sheetName, ref, groupOpts))
			}
		}
		sheets[sheetName] = rendered
	}

	return &models.WorkbookSparklines{
		BookName: filepath.Base(path),
		Sheets:   sheets,
	}, nil
}

func renderRef(f *excelize.File, sheetName string, ref models.SparklineRef, opts Options) models.RenderedSparkline {
	result := models.RenderedSparkline{Ref: ref}

	values, err := source.ReadRange(f, ref.DataRange, sheetName)
	if err != nil {
		result.Error = NewRenderError(StageSource, err).Error()
		return result
	}

	s, err := Render(values, opts)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Sparkline = s
	return result
}

// applyGroup maps Excel group settings onto layout options.
func applyGroup(opts Options, g models.SparklineGroup) Options {
	switch g.Type {
	case "column", "stacked":
		opts.DisplayType = DisplayBar
	default:
		opts.DisplayType = DisplayLine
	}
	if g.ManualMin != nil {
		v := *g.ManualMin
		opts.Min = &v
	}
	if g.ManualMax != nil {
		v := *g.ManualMax
		opts.Max = &v
	}
	return opts
}
