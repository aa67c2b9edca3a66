package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/stats"
)

// ErrInvalidBounds indicates explicit bounds that are not finite or have
// min greater than max.
var ErrInvalidBounds = errors.New("layout: invalid bounds")

// Params holds the inputs of one coordinate mapping pass.
type Params struct {
	// Width and Height are the target dimensions in pixels.
	Width  float64
	Height float64
	// Limit keeps only the trailing Limit values when positive.
	Limit int
	// Min and Max override the data-derived bounds when set.
	Min *float64
	Max *float64
	// FallbackSpan replaces max-min when the span is zero (0 means DefaultFallbackSpan).
	FallbackSpan float64
	// Margin is reserved on the right edge (negative means no margin, 0 means DefaultMargin).
	Margin float64
}

func (p Params) fallbackSpan() float64 {
	if p.FallbackSpan == 0 {
		return DefaultFallbackSpan
	}
	return p.FallbackSpan
}

func (p Params) margin() float64 {
	switch {
	case p.Margin < 0:
		return 0
	case p.Margin == 0:
		return DefaultMargin
	}
	return p.Margin
}

// Truncate returns the trailing limit values of data. A non-positive limit,
// or one not smaller than len(data), returns data unchanged.
func Truncate(data []float64, limit int) []float64 {
	if limit > 0 && limit < len(data) {
		return data[len(data)-limit:]
	}
	return data
}

// ResolveBounds returns the explicit bounds where set and the data extremes
// otherwise. Explicit bounds must be finite.
func ResolveBounds(data []float64, explicitMin, explicitMax *float64) (lo, hi float64, err error) {
	for _, b := range []*float64{explicitMin, explicitMax} {
		if b != nil && (math.IsNaN(*b) || math.IsInf(*b, 0)) {
			return 0, 0, fmt.Errorf("%w: bound %v is not finite", ErrInvalidBounds, *b)
		}
	}

	if explicitMax != nil {
		hi = *explicitMax
	} else if hi, err = stats.Max(data); err != nil {
		return 0, 0, fmt.Errorf("resolve max: %w", err)
	}

	if explicitMin != nil {
		lo = *explicitMin
	} else if lo, err = stats.Min(data); err != nil {
		return 0, 0, fmt.Errorf("resolve min: %w", err)
	}

	if lo > hi {
		return 0, 0, fmt.Errorf("%w: min %v, max %v", ErrInvalidBounds, lo, hi)
	}
	return lo, hi, nil
}

// Layout holds the result of a coordinate mapping pass.
type Layout struct {
	Points []models.Point
	Min    float64
	Max    float64
	// VerticalFactor is pixels per unit of value.
	VerticalFactor float64
	// Step is the horizontal distance between consecutive points.
	Step float64
}

// MapPoints truncates data, resolves the bounds and maps every value to
// screen coordinates. Empty input yields an empty Layout and no error.
func MapPoints(data []float64, p Params) (*Layout, error) {
	data = Truncate(data, p.Limit)
	if len(data) == 0 {
		return &Layout{}, nil
	}

	lo, hi, err := ResolveBounds(data, p.Min, p.Max)
	if err != nil {
		return nil, err
	}

	span := hi - lo
	if span == 0 {
		span = p.fallbackSpan()
	}
	vf := p.Height / span

	count := len(data)
	divisor := float64(count)
	if count > 1 {
		divisor--
	}
	step := (p.Width - p.margin()) / divisor

	points := make([]models.Point, count)
	for i, d := range data {
		offset := hi - d
		if hi == lo {
			offset = 1
		}
		points[i] = models.Point{
			X:     float64(i) * step,
			Y:     offset * vf,
			Value: d,
		}
	}

	return &Layout{
		Points:         points,
		Min:            lo,
		Max:            hi,
		VerticalFactor: vf,
		Step:           step,
	}, nil
}

// Ys returns the Y coordinates of points.
func Ys(points []models.Point) []float64 {
	ys := make([]float64, len(points))
	for i, pt := range points {
		ys[i] = pt.Y
	}
	return ys
}
