package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sparkline-go/pkg/sparkline"
)

// optionFlags binds the layout options to command flags.
type optionFlags struct {
	configPath string
	envPath    string

	width         float64
	height        float64
	limit         int
	min           float64
	max           float64
	displayType   string
	referenceLine string
	normalBand    bool
	fallbackSpan  float64
	margin        float64
	pointRadius   float64
}

func (o *optionFlags) register(cmd *cobra.Command) {
	def := sparkline.DefaultOptions()
	flags := cmd.Flags()

	flags.StringVar(&o.configPath, "config", "", "YAML options file")
	flags.StringVar(&o.envPath, "env-file", ".env", "dotenv file with SPARKLINE_* overrides")
	flags.Float64Var(&o.width, "width", def.Width, "Width in pixels")
	flags.Float64Var(&o.height, "height", def.Height, "Height in pixels")
	flags.IntVar(&o.limit, "limit", def.Limit, "Keep only the last N values (0: all)")
	flags.Float64Var(&o.min, "min", 0, "Explicit lower bound (default: data minimum)")
	flags.Float64Var(&o.max, "max", 0, "Explicit upper bound (default: data maximum)")
	flags.StringVar(&o.displayType, "display", string(def.DisplayType), "Display type: line, bar, or both")
	flags.StringVar(&o.referenceLine, "reference-line", def.ReferenceLine, "none, a statistic name, or a number")
	flags.BoolVar(&o.normalBand, "normal-band", def.NormalBand, "Draw the mean ± one standard deviation band")
	flags.Float64Var(&o.fallbackSpan, "fallback-span", def.FallbackSpan, "Vertical span used when all values are equal")
	flags.Float64Var(&o.margin, "margin", def.Margin, "Space kept free on the right edge")
	flags.Float64Var(&o.pointRadius, "point-radius", def.PointRadius, "Radius of the last point marker")
}

// resolve layers defaults, the dotenv file, the environment, the config file
// and finally the flags the user set explicitly.
func (o *optionFlags) resolve(cmd *cobra.Command) (sparkline.Options, error) {
	opts := sparkline.DefaultOptions()

	envFile, err := sparkline.LoadEnvFile(o.envPath)
	if err != nil {
		return opts, fmt.Errorf("failed to read %s: %w", o.envPath, err)
	}
	if opts, err = sparkline.ApplyEnv(opts, sparkline.EnvLookup(envFile)); err != nil {
		return opts, err
	}

	if o.configPath != "" {
		if opts, err = sparkline.LoadOptions(o.configPath, opts); err != nil {
			return opts, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		opts.Width = o.width
	}
	if flags.Changed("height") {
		opts.Height = o.height
	}
	if flags.Changed("limit") {
		opts.Limit = o.limit
	}
	if flags.Changed("min") {
		v := o.min
		opts.Min = &v
	}
	if flags.Changed("max") {
		v := o.max
		opts.Max = &v
	}
	if flags.Changed("display") {
		dt, err := sparkline.ParseDisplayType(o.displayType)
		if err != nil {
			return opts, err
		}
		opts.DisplayType = dt
	}
	if flags.Changed("reference-line") {
		opts.ReferenceLine = o.referenceLine
	}
	if flags.Changed("normal-band") {
		opts.NormalBand = o.normalBand
	}
	if flags.Changed("fallback-span") {
		opts.FallbackSpan = o.fallbackSpan
	}
	if flags.Changed("margin") {
		opts.Margin = o.margin
	}
	if flags.Changed("point-radius") {
		opts.PointRadius = o.pointRadius
	}

	logger.Debug("options resolved", zapOptions(opts)...)
	return opts, opts.Validate()
}
