package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SeriesDetectionParams holds parameters for series detection.
type SeriesDetectionParams struct {
	// NumericRatioMin is the minimum share of numeric cells between the
	// first and last numeric cell of a candidate column or row.
	NumericRatioMin float64
	// MinValues is the minimum number of numeric cells.
	MinValues int
}

// DefaultSeriesParams returns default series detection parameters.
func DefaultSeriesParams() SeriesDetectionParams {
	return SeriesDetectionParams{
		NumericRatioMin: 0.6,
		MinValues:       2,
	}
}

// DetectSeries finds the first column, then the first row, of a sheet that
// looks like a numeric series and returns it as a sheet-qualified range.
func DetectSeries(f *excelize.File, sheetName string, params SeriesDetectionParams) (string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", fmt.Errorf("%w: sheet %q has no data", ErrInvalidRange, sheetName)
	}

	cell := func(row, col int) string {
		if row < len(rows) && col < len(rows[row]) {
			return rows[row][col]
		}
		return ""
	}

	for col := minCol; col <= maxCol; col++ {
		if first, last, ok := numericRun(minRow, maxRow, params, func(i int) string { return cell(i, col) }); ok {
			return Range{Sheet: sheetName, C1: col + 1, R1: first + 1, C2: col + 1, R2: last + 1}.String(), nil
		}
	}
	for row := minRow; row <= maxRow; row++ {
		if first, last, ok := numericRun(minCol, maxCol, params, func(i int) string { return cell(row, i) }); ok {
			return Range{Sheet: sheetName, C1: first + 1, R1: row + 1, C2: last + 1, R2: row + 1}.String(), nil
		}
	}

	return "", fmt.Errorf("%w: no numeric series in sheet %q", ErrInvalidRange, sheetName)
}

// numericRun returns the first and last numeric index within [from, to] if
// the cells between them are numeric enough.
func numericRun(from, to int, params SeriesDetectionParams, at func(int) string) (first, last int, ok bool) {
	first, last = -1, -1
	count := 0
	for i := from; i <= to; i++ {
		if _, isNum := parseNumber(at(i)); isNum {
			if first < 0 {
				first = i
			}
			last = i
			count++
		}
	}

	if count < params.MinValues {
		return 0, 0, false
	}
	ratio := float64(count) / float64(last-first+1)
	return first, last, ratio >= params.NumericRatioMin
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
