package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Range represents cell coordinate bounds, optionally qualified by a sheet.
type Range struct {
	// Sheet is the sheet name (empty if the reference was unqualified).
	Sheet string
	// C1 and R1 are the start column and row (1-based).
	C1, R1 int
	// C2 and R2 are the end column and row (1-based, inclusive).
	C2, R2 int
}

// Len returns the number of cells in the range.
func (r Range) Len() int {
	return (r.R2 - r.R1 + 1) * (r.C2 - r.C1 + 1)
}

// String formats the range as Sheet!A1:B2, quoting the sheet name when needed.
func (r Range) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	cells := start
	if start != end {
		cells = start + ":" + end
	}
	if r.Sheet == "" {
		return cells
	}
	sheet := r.Sheet
	if strings.ContainsAny(sheet, " -'!") {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet + "!" + cells
}

// ParseRange parses a reference like 'Sheet 1'!$A$1:$J$1, Sheet1!A1:J1,
// A1:J1 or a single cell. The bounds are normalized so C1 <= C2 and R1 <= R2.
func ParseRange(ref string) (Range, error) {
	var r Range

	ref = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ref), "="))
	cells := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet := ref[:idx]
		if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
		r.Sheet = sheet
		cells = ref[idx+1:]
	}

	// Remove $ signs
	cells = strings.ReplaceAll(cells, "$", "")
	parts := strings.Split(cells, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return r, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	var err error
	if r.C1, r.R1, err = excelize.CellNameToCoordinates(parts[0]); err != nil {
		return r, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}
	if r.C2, r.R2, err = excelize.CellNameToCoordinates(parts[1]); err != nil {
		return r, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	if r.C1 > r.C2 {
		r.C1, r.C2 = r.C2, r.C1
	}
	if r.R1 > r.R2 {
		r.R1, r.R2 = r.R2, r.R1
	}
	return r, nil
}
