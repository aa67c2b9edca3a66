package source

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
)

// ParseValues reads numbers separated by commas, semicolons, whitespace or
// newlines. Blank tokens are skipped.
func ParseValues(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseTokens(strings.FieldsFunc(string(data), isSeparator))
}

// ParseArgs parses command-line arguments, each of which may itself hold
// several separated values (e.g., "1,2,3").
func ParseArgs(args []string) ([]float64, error) {
	var tokens []string
	for _, arg := range args {
		tokens = append(tokens, strings.FieldsFunc(arg, isSeparator)...)
	}
	return parseTokens(tokens)
}

// ParseJSON extracts an array of numbers from a JSON document. An empty path
// means the document itself is the array; otherwise path is a gjson path
// (e.g., "series.0.values"). Numeric strings are accepted.
func ParseJSON(data []byte, path string) ([]float64, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON document", ErrNonNumeric)
	}

	result := gjson.ParseBytes(data)
	if path != "" {
		result = result.Get(path)
		if !result.Exists() {
			return nil, fmt.Errorf("json path %q not found", path)
		}
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("json path %q is not an array", path)
	}

	elems := result.Array()
	values := make([]float64, 0, len(elems))
	for i, elem := range elems {
		switch elem.Type {
		case gjson.Number:
			values = append(values, elem.Float())
		case gjson.String:
			v, err := strconv.ParseFloat(strings.TrimSpace(elem.Str), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: element %d %q", ErrNonNumeric, i, elem.Str)
			}
			values = append(values, v)
		default:
			return nil, fmt.Errorf("%w: element %d %s", ErrNonNumeric, i, elem.Raw)
		}
	}
	return values, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

func parseTokens(tokens []string) ([]float64, error) {
	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		v, ok := parseNumber(tok)
		if !ok {
			return nil, fmt.Errorf("%w: token %d %q", ErrNonNumeric, i+1, tok)
		}
		values = append(values, v)
	}
	return values, nil
}
