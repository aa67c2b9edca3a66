// Package models defines the plain data structures produced by sparkline layout.
package models

// Point represents one observation mapped to screen space.
type Point struct {
	// X is the horizontal offset in pixels; it increases with the index.
	X float64 `json:"x"`
	// Y is the vertical offset in pixels from the top edge (inverted).
	Y float64 `json:"y"`
	// Value is the original observation.
	Value float64 `json:"value"`
}

// Direction classifies the final segment of a sparkline.
type Direction string

const (
	// DirectionUp means the last value sits higher than the one before it.
	DirectionUp Direction = "up"
	// DirectionDown means the last value sits lower than the one before it.
	DirectionDown Direction = "down"
	// DirectionSame means the last two values share the same height, or there are fewer than two.
	DirectionSame Direction = "same"
)

// Band represents the normal band drawn around the mean.
type Band struct {
	// Center is the band center in Y space.
	Center float64 `json:"center"`
	// HalfHeight is the distance from the center to either band edge.
	HalfHeight float64 `json:"half_height"`
}

// Top returns the smaller Y edge of the band.
func (b Band) Top() float64 {
	return b.Center - b.HalfHeight
}

// Bottom returns the larger Y edge of the band.
func (b Band) Bottom() float64 {
	return b.Center + b.HalfHeight
}
