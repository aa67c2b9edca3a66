package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/stats"
)

// ReferenceNone disables the reference line.
const ReferenceNone = "none"

// ErrInvalidReference indicates a literal reference line that is not finite.
var ErrInvalidReference = errors.New("layout: reference line must be finite")

// LastDirection compares the last two points. Y is inverted, so a decrease
// in Y is an upward move.
func LastDirection(points []models.Point) models.Direction {
	if len(points) < 2 {
		return models.DirectionSame
	}
	prev, last := points[len(points)-2], points[len(points)-1]
	switch {
	case prev.Y > last.Y:
		return models.DirectionUp
	case prev.Y < last.Y:
		return models.DirectionDown
	default:
		return models.DirectionSame
	}
}

// ReferenceLine resolves selector to a Y coordinate. A numeric selector is
// used literally; any other selector names a statistic computed over the
// points' Y coordinates. ok is false when selector is "none" or empty.
func ReferenceLine(selector string, points []models.Point) (y float64, ok bool, err error) {
	selector = strings.TrimSpace(selector)
	if selector == "" || selector == ReferenceNone {
		return 0, false, nil
	}

	if v, perr := strconv.ParseFloat(selector, 64); perr == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false, fmt.Errorf("%w: %q", ErrInvalidReference, selector)
		}
		return v, true, nil
	}

	y, err = stats.Calc(selector, Ys(points))
	if err != nil {
		return 0, false, err
	}
	return y, true, nil
}

// NormalBand returns the band spanning one standard deviation around the
// mean of the points' Y coordinates.
func NormalBand(points []models.Point) (models.Band, error) {
	ys := Ys(points)
	center, err := stats.Mean(ys)
	if err != nil {
		return models.Band{}, err
	}
	half, err := stats.Stdev(ys)
	if err != nil {
		return models.Band{}, err
	}
	return models.Band{Center: center, HalfHeight: half}, nil
}
