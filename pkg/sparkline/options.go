// Package sparkline lays out compact inline charts and renders native Excel
// sparklines.
package sparkline

import (
	"fmt"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/layout"
)

// DisplayType represents the shapes drawn for a sparkline.
type DisplayType string

const (
	// DisplayLine draws a polyline through the points.
	DisplayLine DisplayType = "line"
	// DisplayBar draws one bar per point.
	DisplayBar DisplayType = "bar"
	// DisplayBoth draws bars with the polyline on top.
	DisplayBoth DisplayType = "both"
)

// ParseDisplayType converts s to a DisplayType.
func ParseDisplayType(s string) (DisplayType, error) {
	switch DisplayType(s) {
	case DisplayLine, DisplayBar, DisplayBoth:
		return DisplayType(s), nil
	}
	return "", fmt.Errorf("%w: display type %q (must be line, bar, or both)", ErrInvalidOptions, s)
}

// Options configures sparkline layout.
type Options struct {
	// Width is the target width in pixels.
	Width float64 `yaml:"width" json:"width"`
	// Height is the target height in pixels.
	Height float64 `yaml:"height" json:"height"`
	// Limit keeps only the trailing Limit values. Zero disables truncation.
	Limit int `yaml:"limit" json:"limit"`
	// Min overrides the data-derived lower bound.
	Min *float64 `yaml:"min" json:"min,omitempty"`
	// Max overrides the data-derived upper bound.
	Max *float64 `yaml:"max" json:"max,omitempty"`
	// DisplayType selects the shapes to draw.
	DisplayType DisplayType `yaml:"display_type" json:"display_type"`
	// ReferenceLine is "none", a statistic name, or a numeric literal.
	ReferenceLine string `yaml:"reference_line" json:"reference_line"`
	// NormalBand enables the mean ± one standard deviation band.
	NormalBand bool `yaml:"normal_band" json:"normal_band"`
	// FallbackSpan replaces the vertical span when max equals min.
	FallbackSpan float64 `yaml:"fallback_span" json:"fallback_span"`
	// Margin is kept free on the right edge.
	Margin float64 `yaml:"margin" json:"margin"`
	// PointRadius is the radius of the last point marker.
	PointRadius float64 `yaml:"point_radius" json:"point_radius"`
}

// DefaultOptions returns default layout options.
func DefaultOptions() Options {
	return Options{
		Width:         100,
		Height:        30,
		DisplayType:   DisplayLine,
		ReferenceLine: layout.ReferenceNone,
		FallbackSpan:  layout.DefaultFallbackSpan,
		Margin:        layout.DefaultMargin,
		PointRadius:   layout.DefaultPointRadius,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive (got %vx%v)", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative (got %d)", ErrInvalidOptions, o.Limit)
	}
	if o.FallbackSpan <= 0 {
		return fmt.Errorf("%w: fallback span must be positive (got %v)", ErrInvalidOptions, o.FallbackSpan)
	}
	if o.Margin < 0 || o.Margin >= o.Width {
		return fmt.Errorf("%w: margin must be in [0, width) (got %v)", ErrInvalidOptions, o.Margin)
	}
	if o.PointRadius < 0 {
		return fmt.Errorf("%w: point radius must not be negative (got %v)", ErrInvalidOptions, o.PointRadius)
	}
	if _, err := ParseDisplayType(string(o.DisplayType)); err != nil {
		return err
	}
	return nil
}

// ShouldDrawLine returns whether the polyline is drawn.
func (o Options) ShouldDrawLine() bool {
	return o.DisplayType == DisplayLine || o.DisplayType == DisplayBoth
}

// ShouldDrawBars returns whether bars are drawn.
func (o Options) ShouldDrawBars() bool {
	return o.DisplayType == DisplayBar || o.DisplayType == DisplayBoth
}

// HasReferenceLine returns whether a reference line was requested.
func (o Options) HasReferenceLine() bool {
	return o.ReferenceLine != "" && o.ReferenceLine != layout.ReferenceNone
}

func (o Options) params() layout.Params {
	margin := o.Margin
	if margin == 0 {
		// layout treats zero as "use the default"
		margin = -1
	}
	return layout.Params{
		Width:        o.Width,
		Height:       o.Height,
		Limit:        o.Limit,
		Min:          o.Min,
		Max:          o.Max,
		FallbackSpan: o.FallbackSpan,
		Margin:       margin,
	}
}
