package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func ptr(v float64) *float64 { return &v }

func TestMapPoints(t *testing.T) {
	// width 104 leaves 100px after the margin; span 4 over height 40 gives vf 10
	got, err := MapPoints([]float64{1, 5, 3}, Params{Width: 104, Height: 40})
	if err != nil {
		t.Fatalf("MapPoints failed: %v", err)
	}

	want := []models.Point{
		{X: 0, Y: 40, Value: 1},
		{X: 50, Y: 0, Value: 5},
		{X: 100, Y: 20, Value: 3},
	}
	if diff := cmp.Diff(want, got.Points, approx); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if got.Min != 1 || got.Max != 5 {
		t.Errorf("bounds = (%v, %v), expected (1, 5)", got.Min, got.Max)
	}
	if got.VerticalFactor != 10 || got.Step != 50 {
		t.Errorf("vf = %v, step = %v, expected 10 and 50", got.VerticalFactor, got.Step)
	}
}

func TestMapPointsConstantSeries(t *testing.T) {
	got, err := MapPoints([]float64{7, 7, 7, 7}, Params{Width: 64, Height: 30})
	if err != nil {
		t.Fatalf("MapPoints failed: %v", err)
	}

	// span falls back to 2, so every y is 1 * 30/2
	for i, p := range got.Points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Fatalf("point %d has non-finite y %v", i, p.Y)
		}
		if p.Y != 15 {
			t.Errorf("point %d: y = %v, expected 15", i, p.Y)
		}
	}
}

func TestMapPointsExplicitEqualBounds(t *testing.T) {
	got, err := MapPoints([]float64{1, 2, 3}, Params{Width: 20, Height: 10, Min: ptr(5), Max: ptr(5)})
	if err != nil {
		t.Fatalf("MapPoints failed: %v", err)
	}
	for i, p := range got.Points {
		if p.Y != 5 {
			t.Errorf("point %d: y = %v, expected 5", i, p.Y)
		}
	}
}

func TestMapPointsSinglePoint(t *testing.T) {
	got, err := MapPoints([]float64{42}, Params{Width: 50, Height: 20})
	if err != nil {
		t.Fatalf("MapPoints failed: %v", err)
	}
	if len(got.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got.Points))
	}
	p := got.Points[0]
	if p.X != 0 || p.Value != 42 {
		t.Errorf("point = %+v, expected x 0 and value 42", p)
	}
	if got.Step != 46 {
		t.Errorf("step = %v, expected 46", got.Step)
	}
	if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		t.Errorf("non-finite y %v", p.Y)
	}
}

func TestMapPointsEmpty(t *testing.T) {
	got, err := MapPoints(nil, Params{Width: 50, Height: 20})
	if err != nil {
		t.Fatalf("MapPoints failed: %v", err)
	}
	if len(got.Points) != 0 {
		t.Errorf("expected no points, got %d", len(got.Points))
	}
}

func TestMapPointsLimit(t *testing.T) {
	got, err := MapPoints([]float64{100, 1, 2, 3}, Params{Width: 24, Height: 10, Limit: 3})
	if err != nil {
		t.Fatalf("MapPoints failed: %v", err)
	}

	var values []float64
	for _, p := range got.Points {
		values = append(values, p.Value)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	// the truncated value must not influence the bounds
	if got.Max != 3 {
		t.Errorf("max = %v, expected 3", got.Max)
	}
	if got.Step != 10 {
		t.Errorf("step = %v, expected 10", got.Step)
	}
}

func TestMapPointsExplicitBounds(t *testing.T) {
	got, err := MapPoints([]float64{5}, Params{Width: 10, Height: 100, Min: ptr(0), Max: ptr(10)})
	if err != nil {
		t.Fatalf("MapPoints failed: %v", err)
	}
	if got.Points[0].Y != 50 {
		t.Errorf("y = %v, expected 50", got.Points[0].Y)
	}
}

func TestMapPointsInvalidBounds(t *testing.T) {
	_, err := MapPoints([]float64{5}, Params{Width: 10, Height: 10, Min: ptr(10), Max: ptr(0)})
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestMapPointsNonFiniteBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max *float64
	}{
		{"nan min", ptr(math.NaN()), nil},
		{"nan max", nil, ptr(math.NaN())},
		{"infinite min", ptr(math.Inf(-1)), ptr(10)},
		{"infinite max", ptr(0), ptr(math.Inf(1))},
	}

	for _, tt := range tests {
		_, err := MapPoints([]float64{1, 2, 3}, Params{Width: 100, Height: 30, Min: tt.min, Max: tt.max})
		if !errors.Is(err, ErrInvalidBounds) {
			t.Errorf("%s: expected ErrInvalidBounds, got %v", tt.name, err)
		}
	}
}

func TestMapPointsCustomConstants(t *testing.T) {
	got, err := MapPoints([]float64{3, 3}, Params{Width: 10, Height: 12, FallbackSpan: 4, Margin: -1})
	if err != nil {
		t.Fatalf("MapPoints failed: %v", err)
	}
	if got.Step != 10 {
		t.Errorf("step = %v, expected 10 with no margin", got.Step)
	}
	if got.Points[0].Y != 3 {
		t.Errorf("y = %v, expected 3", got.Points[0].Y)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		limit    int
		expected []float64
	}{
		{0, []float64{1, 2, 3}},
		{-1, []float64{1, 2, 3}},
		{2, []float64{2, 3}},
		{3, []float64{1, 2, 3}},
		{10, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		got := Truncate([]float64{1, 2, 3}, tt.limit)
		if diff := cmp.Diff(tt.expected, got); diff != "" {
			t.Errorf("Truncate(limit=%d) mismatch (-want +got):\n%s", tt.limit, diff)
		}
	}
}
