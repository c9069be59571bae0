package edt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/segmap/internal/grid"
)

func TestTransform_SingleSeed(t *testing.T) {
	d := Transform(5, 5, func(i, j int) bool {
		return i == 2 && j == 2
	})

	assert.Equal(t, 0.0, d.At(2, 2))
	assert.InDelta(t, 1.0, d.At(2, 3), 1e-12)
	assert.InDelta(t, 2.0, d.At(0, 2), 1e-12)
	assert.InDelta(t, math.Sqrt(2), d.At(1, 1), 1e-12)
	assert.InDelta(t, math.Sqrt(8), d.At(0, 0), 1e-12)
}

func TestTransform_TwoSeeds(t *testing.T) {
	// Seeds at the two ends of a row; distances follow the closer one.
	d := Transform(1, 9, func(i, j int) bool {
		return j == 0 || j == 8
	})

	assert.InDelta(t, 3.0, d.At(0, 3), 1e-12)
	assert.InDelta(t, 4.0, d.At(0, 4), 1e-12)
	assert.InDelta(t, 2.0, d.At(0, 6), 1e-12)
}

func TestTransform_AllSeeds(t *testing.T) {
	d := Transform(3, 3, func(_, _ int) bool { return true })
	for _, v := range d.Data() {
		assert.Equal(t, 0.0, v)
	}
}

func TestTransform_NoSeeds(t *testing.T) {
	d := Transform(3, 4, func(_, _ int) bool { return false })
	for _, v := range d.Data() {
		assert.True(t, math.IsInf(v, 1))
	}
}

func TestTransform_SingleCell(t *testing.T) {
	d := Transform(1, 1, func(_, _ int) bool { return true })
	require.Equal(t, 1, d.Len())
	assert.Equal(t, 0.0, d.At(0, 0))
}

// TestTransform_MatchesBruteForce cross-checks the envelope passes against
// the O(n^2) definition on a scattered seed pattern.
func TestTransform_MatchesBruteForce(t *testing.T) {
	h, w := 13, 17
	seeds := [][2]int{{0, 0}, {5, 11}, {12, 3}, {7, 7}, {2, 16}}

	isSeed := func(i, j int) bool {
		for _, s := range seeds {
			if s[0] == i && s[1] == j {
				return true
			}
		}
		return false
	}

	d := Transform(h, w, isSeed)

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			want := math.Inf(1)
			for _, s := range seeds {
				di, dj := float64(i-s[0]), float64(j-s[1])
				want = math.Min(want, math.Hypot(di, dj))
			}
			assert.InDelta(t, want, d.At(i, j), 1e-9, "cell (%d,%d)", i, j)
		}
	}
}

func TestFromMask(t *testing.T) {
	mask, err := grid.FromSlice([]int{
		1, 0, 0,
		0, 0, 0,
		0, 0, 2,
	}, 3, 3)
	require.NoError(t, err)

	d := FromMask(mask, 2)

	assert.Equal(t, 0.0, d.At(2, 2))
	assert.InDelta(t, math.Sqrt(8), d.At(0, 0), 1e-12)
}
