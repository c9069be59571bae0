package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/segmap/internal/grid"
)

func TestSummarize(t *testing.T) {
	g, err := grid.FromSlice([]float64{4, 1, 3, 2}, 2, 2)
	require.NoError(t, err)

	s := Summarize(g)

	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 1.2909944487, s.Std, 1e-9) // sample std of 1..4
	assert.InDelta(t, 2.0, s.Median, 1e-12)
}

func TestSummarize_Constant(t *testing.T) {
	g := grid.MustNew[float64](3, 3)
	g.Fill(7)

	s := Summarize(g)

	assert.Equal(t, 7.0, s.Min)
	assert.Equal(t, 7.0, s.Max)
	assert.Equal(t, 7.0, s.Mean)
	assert.Equal(t, 0.0, s.Std)
	assert.Equal(t, 7.0, s.P95)
}

func TestSummary_String(t *testing.T) {
	s := Summary{Min: 0, Max: 10, Mean: 5, Std: 2, Median: 4.5, P95: 9.5}
	assert.Contains(t, s.String(), "max=10.0000")
	assert.Contains(t, s.String(), "p95=9.5000")
}
