package sparkline

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions indicates options that cannot produce a layout.
var ErrInvalidOptions = errors.New("invalid options")

// Render stages reported by RenderError.
const (
	StageOptions       = "options"
	StagePoints        = "points"
	StageReferenceLine = "reference_line"
	StageNormalBand    = "normal_band"
	StageSource        = "source"
)

// RenderError represents an error during one stage of a layout pass.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(stage string, err error) *RenderError {
	return &RenderError{
		Stage: stage,
		Err:   err,
	}
}
