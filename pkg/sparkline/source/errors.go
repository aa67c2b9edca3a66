// Package source reads sparkline observations from text, JSON and Excel
// workbooks.
package source

import "errors"

// ErrInvalidRange indicates a malformed or unresolvable cell range.
var ErrInvalidRange = errors.New("invalid range")

// ErrNonNumeric indicates an input token that is not a number.
var ErrNonNumeric = errors.New("non-numeric value")
