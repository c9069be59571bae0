// Package stats summarizes the value distribution of a weight map, mainly
// for CLI reporting and sanity checks after a synthesis run.
package stats

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/segmap/internal/grid"
)

// Summary describes the distribution of a grid's values.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Std    float64
	Median float64
	P95    float64
}

// Summarize computes a Summary over every cell of g.
func Summarize(g *grid.Grid[float64]) Summary {
	vals := slices.Clone(g.Data())
	slices.Sort(vals) // stat.Quantile requires sorted input

	return Summary{
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   stat.Mean(vals, nil),
		Std:    stat.StdDev(vals, nil),
		Median: stat.Quantile(0.5, stat.Empirical, vals, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, vals, nil),
	}
}

// String formats the summary on one line for log output.
func (s Summary) String() string {
	return fmt.Sprintf("min=%.4f max=%.4f mean=%.4f std=%.4f median=%.4f p95=%.4f",
		s.Min, s.Max, s.Mean, s.Std, s.Median, s.P95)
}
