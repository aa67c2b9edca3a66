// Package layout maps observations to sparkline screen coordinates and
// derives the overlays drawn on top of them.
package layout

// DefaultFallbackSpan is the vertical span used when max equals min.
// It keeps the vertical factor finite so a flat series still draws a line.
const DefaultFallbackSpan = 2.0

// DefaultMargin is the horizontal space kept free on the right so the last
// point does not clip the viewport edge.
const DefaultMargin = 4.0

// DefaultPointRadius is the radius of the last point marker.
const DefaultPointRadius = 2.0
