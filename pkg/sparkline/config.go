package sparkline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "SPARKLINE_"

// LoadOptions reads a YAML options file layered over base.
// Fields absent from the file keep their base value.
func LoadOptions(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	opts := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	return opts, nil
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file. A missing file
// yields an empty map.
func LoadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	return env, err
}

// EnvLookup returns a lookup that prefers the process environment and falls
// back to file.
func EnvLookup(file map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
}

// ApplyEnv overrides opts with SPARKLINE_* variables found through lookup.
func ApplyEnv(opts Options, lookup func(string) (string, bool)) (Options, error) {
	floats := map[string]*float64{
		"WIDTH":         &opts.Width,
		"HEIGHT":        &opts.Height,
		"FALLBACK_SPAN": &opts.FallbackSpan,
		"MARGIN":        &opts.Margin,
		"POINT_RADIUS":  &opts.PointRadius,
	}
	for key, dst := range floats {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, fmt.Errorf("%w: %s%s=%q", ErrInvalidOptions, EnvPrefix, key, v)
		}
		*dst = f
	}

	for _, key := range []string{"MIN", "MAX"} {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, fmt.Errorf("%w: %s%s=%q", ErrInvalidOptions, EnvPrefix, key, v)
		}
		if key == "MIN" {
			opts.Min = &f
		} else {
			opts.Max = &f
		}
	}

	if v, ok := lookup(EnvPrefix + "LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("%w: %sLIMIT=%q", ErrInvalidOptions, EnvPrefix, v)
		}
		opts.Limit = n
	}
	if v, ok := lookup(EnvPrefix + "NORMAL_BAND"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%w: %sNORMAL_BAND=%q", ErrInvalidOptions, EnvPrefix, v)
		}
		opts.NormalBand = b
	}
	if v, ok := lookup(EnvPrefix + "DISPLAY_TYPE"); ok {
		opts.DisplayType = DisplayType(v)
	}
	if v, ok := lookup(EnvPrefix + "REFERENCE_LINE"); ok {
		opts.ReferenceLine = v
	}

	return opts, nil
}
