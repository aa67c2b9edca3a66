package models

// SparklineRef represents one native sparkline inside a group.
type SparklineRef struct {
	// DataRange is the range formula for the values (e.g., Sheet1!A1:J1).
	DataRange string `json:"data_range"`
	// Location is the cell the sparkline is drawn in (e.g., K1).
	Location string `json:"location"`
}

// SparklineGroup represents an Excel sparkline group found in a worksheet.
type SparklineGroup struct {
	// Type is the Excel sparkline type (line, column, stacked).
	Type string `json:"type"`
	// ManualMin is the custom vertical axis minimum (nil if automatic).
	ManualMin *float64 `json:"manual_min,omitempty"`
	// ManualMax is the custom vertical axis maximum (nil if automatic).
	ManualMax *float64 `json:"manual_max,omitempty"`
	// Markers reports whether point markers are enabled for the group.
	Markers bool `json:"markers,omitempty"`
	// Sparklines is the list of sparklines sharing the group settings.
	Sparklines []SparklineRef `json:"sparklines"`
}

// RenderedSparkline pairs a native sparkline with its layout.
type RenderedSparkline struct {
	// Ref identifies the source of the values.
	Ref SparklineRef `json:"ref"`
	// Sparkline is the computed layout (nil if rendering failed).
	Sparkline *Sparkline `json:"sparkline,omitempty"`
	// Error describes why rendering failed.
	Error string `json:"error,omitempty"`
}

// WorkbookSparklines represents every rendered sparkline in a workbook.
type WorkbookSparklines struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to its rendered sparklines.
	Sheets map[string][]RenderedSparkline `json:"sheets"`
}
