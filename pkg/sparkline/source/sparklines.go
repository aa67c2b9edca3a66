package source

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/models"
)

// ExtractSparklineGroups finds the native sparkline groups of every sheet in
// an xlsx file. Excel stores them in the x14 extension list of the worksheet
// part, which excelize does not expose for reading.
func ExtractSparklineGroups(xlsxPath string) (map[string][]models.SparklineGroup, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetPaths, err := workbookSheetPaths(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.SparklineGroup)
	for sheetName, sheetPath := range sheetPaths {
		sheetXML, err := readZipFile(&r.Reader, sheetPath)
		if err != nil || sheetXML == nil {
			continue
		}
		if groups := parseSparklineGroups(sheetXML); len(groups) > 0 {
			result[sheetName] = groups
		}
	}

	return result, nil
}

// parseSparklineGroups parses every sparklineGroup element of a worksheet.
func parseSparklineGroups(data []byte) []models.SparklineGroup {
	var groups []models.SparklineGroup
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sparklineGroup" {
			groups = append(groups, parseSparklineGroup(decoder, se))
		}
	}

	return groups
}

// parseSparklineGroup parses one sparklineGroup element and its sparklines.
func parseSparklineGroup(decoder *xml.Decoder, start xml.StartElement) models.SparklineGroup {
	g := models.SparklineGroup{Type: "line"}
	var manualMin, manualMax *float64
	var minCustom, maxCustom bool

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "type":
			if attr.Value != "" {
				g.Type = attr.Value
			}
		case "markers":
			g.Markers = attr.Value == "1" || attr.Value == "true"
		case "manualMin":
			manualMin = parseFloatAttr(attr.Value)
		case "manualMax":
			manualMax = parseFloatAttr(attr.Value)
		case "minAxisType":
			minCustom = attr.Value == "custom"
		case "maxAxisType":
			maxCustom = attr.Value == "custom"
		}
	}
	if minCustom {
		g.ManualMin = manualMin
	}
	if maxCustom {
		g.ManualMax = manualMax
	}

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "sparkline" {
				g.Sparklines = append(g.Sparklines, parseSparkline(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return g
}

// parseSparkline parses the data range (f) and location (sqref) of a sparkline.
func parseSparkline(decoder *xml.Decoder) models.SparklineRef {
	var ref models.SparklineRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					ref.DataRange = strings.TrimSpace(txt)
				}
				depth--
			case "sqref":
				if txt, err := readElementText(decoder); err == nil {
					ref.Location = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

func parseFloatAttr(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
