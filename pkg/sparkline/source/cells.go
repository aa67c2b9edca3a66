package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadRange reads the numeric cells of ref in row-major order.
// Empty and text cells are skipped, matching how Excel plots gaps.
// Unqualified references are resolved against defaultSheet.
func ReadRange(f *excelize.File, ref, defaultSheet string) ([]float64, error) {
	r, err := ParseRange(ref)
	if err != nil {
		return nil, err
	}

	sheetName := r.Sheet
	if sheetName == "" {
		sheetName = defaultSheet
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: sheet %q not found", ErrInvalidRange, sheetName)
	}

	values := make([]float64, 0, r.Len())
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			cellName, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			cellValue, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, err
			}
			if v, ok := parseNumber(cellValue); ok {
				values = append(values, v)
			}
		}
	}

	return values, nil
}

// parseNumber attempts to parse a string value as a finite number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
