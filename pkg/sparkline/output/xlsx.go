package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
	"github.com/ukaji3/sparkline-go/pkg/sparkline/source"
)

// WorkbookOptions configures a native Excel sparkline export.
type WorkbookOptions struct {
	// Sheet is the target sheet; it is created when missing.
	Sheet string
	// Row is the 1-based row the values are written to.
	Row int
	// Type is the Excel sparkline type (line, column).
	Type string
	// Markers enables point markers on line sparklines.
	Markers bool
}

// ToWorkbook writes data into one row of an xlsx file and adds a native
// sparkline in the cell right after the values. The file is created when
// it does not exist.
func ToWorkbook(path string, data []float64, wo WorkbookOptions) (models.SparklineRef, error) {
	var ref models.SparklineRef
	if len(data) == 0 {
		return ref, errors.New("no values to export")
	}
	if wo.Row < 1 {
		wo.Row = 1
	}
	if wo.Sheet == "" {
		wo.Sheet = "Sheet1"
	}

	f, existing, err := openOrCreate(path)
	if err != nil {
		return ref, err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(wo.Sheet)
	if err != nil {
		return ref, err
	}
	if idx < 0 {
		if _, err := f.NewSheet(wo.Sheet); err != nil {
			return ref, err
		}
	}

	start, err := excelize.CoordinatesToCellName(1, wo.Row)
	if err != nil {
		return ref, err
	}
	location, err := excelize.CoordinatesToCellName(len(data)+1, wo.Row)
	if err != nil {
		return ref, err
	}

	row := make([]interface{}, len(data))
	for i, v := range data {
		row[i] = v
	}
	if err := f.SetSheetRow(wo.Sheet, start, &row); err != nil {
		return ref, err
	}

	ref = models.SparklineRef{
		DataRange: source.Range{Sheet: wo.Sheet, C1: 1, R1: wo.Row, C2: len(data), R2: wo.Row}.String(),
		Location:  location,
	}
	if err := f.AddSparkline(wo.Sheet, &excelize.SparklineOptions{
		Location: []string{ref.Location},
		Range:    []string{ref.DataRange},
		Type:     wo.Type,
		Markers:  wo.Markers && wo.Type != "column",
	}); err != nil {
		return ref, fmt.Errorf("add sparkline: %w", err)
	}

	if existing {
		return ref, f.Save()
	}
	return ref, f.SaveAs(path)
}

func openOrCreate(path string) (*excelize.File, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return excelize.NewFile(), false, nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}
