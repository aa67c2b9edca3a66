package models

// Sparkline represents one complete layout pass, ready to be drawn.
type Sparkline struct {
	// Width is the target width in pixels.
	Width float64 `json:"width"`
	// Height is the target height in pixels.
	Height float64 `json:"height"`
	// DisplayType is the shape set to draw (line, bar, both).
	DisplayType string `json:"display_type"`
	// DrawLine is set when the polyline is drawn.
	DrawLine bool `json:"draw_line"`
	// DrawBars is set when one bar per point is drawn.
	DrawBars bool `json:"draw_bars"`
	// Min is the resolved lower bound.
	Min float64 `json:"min"`
	// Max is the resolved upper bound.
	Max float64 `json:"max"`
	// PointRadius is the radius of the last point marker.
	PointRadius float64 `json:"point_radius"`
	// Points contains the mapped observations (empty for empty input).
	Points []Point `json:"points"`
	// Direction is the classification of the final segment.
	Direction Direction `json:"direction"`
	// ReferenceLine is the Y coordinate of the reference line (nil if none).
	ReferenceLine *float64 `json:"reference_line,omitempty"`
	// Band is the normal band (nil if disabled or empty).
	Band *Band `json:"band,omitempty"`
}

// Empty reports whether the sparkline has nothing to draw.
func (s *Sparkline) Empty() bool {
	return len(s.Points) == 0
}

// Extent returns the horizontal extent covered by the points.
func (s *Sparkline) Extent() (left, right float64) {
	if len(s.Points) == 0 {
		return 0, 0
	}
	return s.Points[0].X, s.Points[len(s.Points)-1].X
}
