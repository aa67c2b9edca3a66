package sparkline

import (
	"errors"
	"testing"
)

func TestDefaultOptionsAreValid(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"negative height", func(o *Options) { o.Height = -1 }},
		{"negative limit", func(o *Options) { o.Limit = -3 }},
		{"zero fallback span", func(o *Options) { o.FallbackSpan = 0 }},
		{"margin wider than chart", func(o *Options) { o.Margin = o.Width }},
		{"width within default margin", func(o *Options) { o.Width = 4 }},
		{"negative radius", func(o *Options) { o.PointRadius = -2 }},
		{"unknown display type", func(o *Options) { o.DisplayType = "area" }},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		tt.mutate(&opts)
		if err := opts.Validate(); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%s: expected ErrInvalidOptions, got %v", tt.name, err)
		}
	}
}

func TestShouldDraw(t *testing.T) {
	tests := []struct {
		displayType DisplayType
		line        bool
		bars        bool
	}{
		{DisplayLine, true, false},
		{DisplayBar, false, true},
		{DisplayBoth, true, true},
	}

	for _, tt := range tests {
		opts := Options{DisplayType: tt.displayType}
		if opts.ShouldDrawLine() != tt.line || opts.ShouldDrawBars() != tt.bars {
			t.Errorf("%s: line=%v bars=%v, expected line=%v bars=%v",
				tt.displayType, opts.ShouldDrawLine(), opts.ShouldDrawBars(), tt.line, tt.bars)
		}
	}
}

func TestZeroMarginUsesFullWidth(t *testing.T) {
	opts := DefaultOptions()
	opts.Margin = 0
	opts.Width = 50

	s, err := Render([]float64{1, 2}, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if s.Points[1].X != 50 {
		t.Errorf("Expected last x 50, got %v", s.Points[1].X)
	}
}
