package sparkline

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/layout"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/stats"
)

func TestRender(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 104
	opts.Height = 40
	opts.ReferenceLine = "median"
	opts.NormalBand = true

	s, err := Render([]float64{1, 5, 3}, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(s.Points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(s.Points))
	}
	if s.Direction != models.DirectionDown {
		t.Errorf("Expected direction down, got %q", s.Direction)
	}
	// ys are 40, 0, 20: median (upper middle) is 20
	if s.ReferenceLine == nil || *s.ReferenceLine != 20 {
		t.Errorf("Expected reference line 20, got %v", s.ReferenceLine)
	}
	if s.Band == nil || s.Band.Center != 20 {
		t.Fatalf("Expected band centered at 20, got %+v", s.Band)
	}
	if math.Abs(s.Band.HalfHeight-math.Sqrt(800.0/3)) > 1e-9 {
		t.Errorf("unexpected half height %v", s.Band.HalfHeight)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Errorf("Expected bounds (1, 5), got (%v, %v)", s.Min, s.Max)
	}
}

func TestRenderEmpty(t *testing.T) {
	opts := DefaultOptions()
	opts.ReferenceLine = "median"
	opts.NormalBand = true

	s, err := Render(nil, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !s.Empty() || s.ReferenceLine != nil || s.Band != nil {
		t.Errorf("Expected empty sparkline without overlays, got %+v", s)
	}
	if s.Direction != models.DirectionSame {
		t.Errorf("Expected direction same, got %q", s.Direction)
	}
}

func TestRenderNoOverlaysByDefault(t *testing.T) {
	s, err := Render([]float64{1, 2, 3}, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if s.ReferenceLine != nil || s.Band != nil {
		t.Errorf("Expected no overlays, got line %v band %v", s.ReferenceLine, s.Band)
	}
	if s.Direction != models.DirectionUp {
		t.Errorf("Expected direction up, got %q", s.Direction)
	}
}

func TestRenderDrawFlags(t *testing.T) {
	tests := []struct {
		displayType DisplayType
		line, bars  bool
	}{
		{DisplayLine, true, false},
		{DisplayBar, false, true},
		{DisplayBoth, true, true},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		opts.DisplayType = tt.displayType
		s, err := Render([]float64{1, 2}, opts)
		if err != nil {
			t.Fatalf("%s: Render failed: %v", tt.displayType, err)
		}
		if s.DrawLine != tt.line || s.DrawBars != tt.bars {
			t.Errorf("%s: DrawLine=%v DrawBars=%v, expected %v %v",
				tt.displayType, s.DrawLine, s.DrawBars, tt.line, tt.bars)
		}
	}
}

func TestRenderLiteralReferenceLine(t *testing.T) {
	opts := DefaultOptions()
	opts.ReferenceLine = "3.5"

	s, err := Render([]float64{10, 20}, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if s.ReferenceLine == nil || *s.ReferenceLine != 3.5 {
		t.Errorf("Expected literal 3.5, got %v", s.ReferenceLine)
	}
}

func TestRenderErrors(t *testing.T) {
	lo, hi := 10.0, 0.0
	nan := math.NaN()

	tests := []struct {
		name   string
		mutate func(*Options)
		stage  string
		target error
	}{
		{"zero width", func(o *Options) { o.Width = 0 }, StageOptions, ErrInvalidOptions},
		{"bad display type", func(o *Options) { o.DisplayType = "pie" }, StageOptions, ErrInvalidOptions},
		{"inverted bounds", func(o *Options) { o.Min, o.Max = &lo, &hi }, StagePoints, layout.ErrInvalidBounds},
		{"nan min", func(o *Options) { o.Min = &nan }, StagePoints, layout.ErrInvalidBounds},
		{"unknown statistic", func(o *Options) { o.ReferenceLine = "mode" }, StageReferenceLine, stats.ErrUnknownStatistic},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		tt.mutate(&opts)

		_, err := Render([]float64{1, 2, 3}, opts)
		var renderErr *RenderError
		if !errors.As(err, &renderErr) {
			t.Errorf("%s: expected RenderError, got %v", tt.name, err)
			continue
		}
		if renderErr.Stage != tt.stage {
			t.Errorf("%s: stage = %q, expected %q", tt.name, renderErr.Stage, tt.stage)
		}
		if !errors.Is(err, tt.target) {
			t.Errorf("%s: expected %v in chain, got %v", tt.name, tt.target, err)
		}
	}
}

func TestRenderWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	for i, v := range []int{5, 3, 8, 1} {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Sheet1", cellName, v)
	}
	f.SetCellValue("Sheet1", "A2", "no numbers here")

	if err := f.AddSparkline("Sheet1", &excelize.SparklineOptions{
		Location: []string{"E1", "E2"},
		Range:    []string{"Sheet1!A1:D1", "Sheet1!A2:D2"},
		Type:     "column",
	}); err != nil {
		t.Fatalf("AddSparkline failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	result, err := RenderWorkbook(path, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderWorkbook failed: %v", err)
	}
	if result.BookName != "book.xlsx" {
		t.Errorf("Expected book name book.xlsx, got %q", result.BookName)
	}

	rendered := result.Sheets["Sheet1"]
	if len(rendered) != 2 {
		t.Fatalf("Expected 2 rendered sparklines, got %d", len(rendered))
	}

	first := rendered[0]
	if first.Error != "" || first.Sparkline == nil {
		t.Fatalf("first sparkline failed: %q", first.Error)
	}
	if first.Sparkline.DisplayType != string(DisplayBar) {
		t.Errorf("Expected column group to render as bar, got %q", first.Sparkline.DisplayType)
	}
	if len(first.Sparkline.Points) != 4 || first.Sparkline.Direction != models.DirectionDown {
		t.Errorf("unexpected layout %+v", first.Sparkline)
	}

	// a text-only row renders as an empty sparkline, not an error
	second := rendered[1]
	if second.Sparkline == nil || !second.Sparkline.Empty() {
		t.Errorf("Expected empty sparkline for text row, got %+v", second)
	}
}

func TestApplyGroup(t *testing.T) {
	lo, hi := -1.0, 9.0
	opts := applyGroup(DefaultOptions(), models.SparklineGroup{Type: "stacked", ManualMin: &lo, ManualMax: &hi})

	if opts.DisplayType != DisplayBar {
		t.Errorf("Expected bar, got %q", opts.DisplayType)
	}
	if opts.Min == nil || *opts.Min != -1 || opts.Max == nil || *opts.Max != 9 {
		t.Errorf("Expected bounds (-1, 9), got (%v, %v)", opts.Min, opts.Max)
	}
	// the group bounds are copied, not aliased
	lo = 100
	if *opts.Min != -1 {
		t.Error("group bound aliased into options")
	}
}
