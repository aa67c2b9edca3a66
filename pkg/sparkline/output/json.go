// Package output serializes sparkline layouts as JSON, SVG, terminal text and
// native Excel sparklines.
package output

import "encoding/json"

// ToJSON serializes a sparkline, a workbook result or any other model to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
