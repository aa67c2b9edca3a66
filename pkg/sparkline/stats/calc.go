package stats

import (
	"fmt"
	"strings"
)

// Name identifies a statistic accepted by Calc.
type Name string

const (
	NameMax      Name = "max"
	NameMin      Name = "min"
	NameMean     Name = "mean"
	NameAvg      Name = "avg" // alias for mean
	NameMedian   Name = "median"
	NameStdev    Name = "stdev"
	NameVariance Name = "variance"
)

// Func computes one statistic over a non-empty sequence.
type Func func(data []float64) (float64, error)

var funcs = map[Name]Func{
	NameMax:      Max,
	NameMin:      Min,
	NameMean:     Mean,
	NameAvg:      Mean,
	NameMedian:   Median,
	NameStdev:    Stdev,
	NameVariance: Variance,
}

// Names returns the accepted statistic names in a stable order.
func Names() []Name {
	return []Name{NameMax, NameMin, NameMean, NameAvg, NameMedian, NameStdev, NameVariance}
}

// ParseName validates s against the accepted statistic names.
func ParseName(s string) (Name, error) {
	n := Name(strings.TrimSpace(s))
	if _, ok := funcs[n]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatistic, s)
	}
	return n, nil
}

// Lookup returns the function registered for name.
func Lookup(name string) (Func, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return funcs[n], nil
}

// Calc computes the statistic called name over data.
func Calc(name string, data []float64) (float64, error) {
	fn, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return fn(data)
}
