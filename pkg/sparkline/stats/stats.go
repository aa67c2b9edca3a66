// Package stats provides the descriptive statistics used for sparkline
// reference lines and bands.
//
// Every function requires a non-empty input and returns ErrEmptyInput
// otherwise. No function modifies its input.
package stats

import (
	"errors"
	"fmt"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// ErrEmptyInput indicates a statistic was requested over no values.
var ErrEmptyInput = errors.New("stats: input must not be empty")

// ErrUnknownStatistic indicates a name outside the supported set.
var ErrUnknownStatistic = errors.New("stats: unknown statistic")

// Max returns the largest element.
func Max(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	return wrap("max")(mstats.Max(data))
}

// Min returns the smallest element.
func Min(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	return wrap("min")(mstats.Min(data))
}

// Mean returns the arithmetic mean.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	return wrap("mean")(mstats.Mean(data))
}

// Median returns the element at index n/2 of the sorted values. For an even
// number of values this is the upper of the two central elements, not their
// average: Median([1 2 3 4]) is 3.
func Median(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2], nil
}

// Midpoint returns max - min/2.
//
// This is not the arithmetic midpoint; Center computes (max+min)/2.
func Midpoint(data []float64) (float64, error) {
	hi, lo, err := bounds(data)
	if err != nil {
		return 0, err
	}
	return hi - lo/2, nil
}

// Center returns (max+min)/2.
func Center(data []float64) (float64, error) {
	hi, lo, err := bounds(data)
	if err != nil {
		return 0, err
	}
	return (hi + lo) / 2, nil
}

// Variance returns the population variance (denominator n).
func Variance(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	return wrap("variance")(mstats.PopulationVariance(data))
}

// Stdev returns the population standard deviation.
func Stdev(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	return wrap("stdev")(mstats.StandardDeviationPopulation(data))
}

func bounds(data []float64) (hi, lo float64, err error) {
	if hi, err = Max(data); err != nil {
		return 0, 0, err
	}
	if lo, err = Min(data); err != nil {
		return 0, 0, err
	}
	return hi, lo, nil
}

func wrap(name string) func(float64, error) (float64, error) {
	return func(v float64, err error) (float64, error) {
		if errors.Is(err, mstats.ErrEmptyInput) {
			return 0, ErrEmptyInput
		}
		if err != nil {
			return 0, fmt.Errorf("stats: %s: %w", name, err)
		}
		return v, nil
	}
}
