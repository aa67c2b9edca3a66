package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sparkline-go/pkg/sparkline/stats"
)

func newStatsCmd() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "stats <name|all> [values...]",
		Short: "Compute a descriptive statistic",
		Long: `Compute max, min, mean, avg, median, stdev or variance over the values.
"all" prints every statistic, plus midpoint (max - min/2) and center
((max + min) / 2).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := in.load(cmd, args[1:])
			if err != nil {
				return fmt.Errorf("failed to read values: %w", err)
			}

			w := cmd.OutOrStdout()
			if args[0] != "all" {
				v, err := stats.Calc(args[0], values)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, formatFloat(v))
				return nil
			}

			for _, name := range stats.Names() {
				v, err := stats.Calc(string(name), values)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-9s %s\n", name, formatFloat(v))
			}
			extras := []struct {
				name string
				fn   stats.Func
			}{
				{"midpoint", stats.Midpoint},
				{"center", stats.Center},
			}
			for _, e := range extras {
				v, err := e.fn(values)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-9s %s\n", e.name, formatFloat(v))
			}
			return nil
		},
	}

	in.register(cmd)
	return cmd
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
