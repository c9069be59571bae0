package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/segmap/internal/grid"
)

func maskFrom(t *testing.T, data []int, h, w int) *grid.Grid[int] {
	t.Helper()
	m, err := grid.FromSlice(data, h, w)
	require.NoError(t, err)
	return m
}

func TestComponents_Empty(t *testing.T) {
	m := grid.MustNew[int](4, 4)

	labels, n := Components(m)

	assert.Equal(t, 0, n)
	for _, l := range labels.Data() {
		assert.Equal(t, 0, l)
	}
}

func TestComponents_SingleBlob(t *testing.T) {
	m := maskFrom(t, []int{
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}, 3, 4)

	labels, n := Components(m)

	require.Equal(t, 1, n)
	assert.Equal(t, 1, labels.At(0, 1))
	assert.Equal(t, 1, labels.At(1, 2))
	assert.Equal(t, 0, labels.At(2, 0))
}

func TestComponents_TwoBlobs(t *testing.T) {
	m := maskFrom(t, []int{
		1, 1, 0, 0, 1,
		1, 0, 0, 0, 1,
		0, 0, 0, 0, 0,
	}, 3, 5)

	labels, n := Components(m)

	require.Equal(t, 2, n)
	// Raster order: the left blob appears first.
	assert.Equal(t, 1, labels.At(0, 0))
	assert.Equal(t, 2, labels.At(0, 4))
	assert.Equal(t, 2, labels.At(1, 4))
}

func TestComponents_DiagonalIsConnected(t *testing.T) {
	// 8-connectivity: a diagonal staircase is one component.
	m := maskFrom(t, []int{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, 3, 3)

	_, n := Components(m)
	assert.Equal(t, 1, n)
}

func TestComponents_UShapeMergesAcrossScan(t *testing.T) {
	// The two arms get distinct provisional labels until the bottom row
	// joins them; the result must still be a single compact ID.
	m := maskFrom(t, []int{
		1, 0, 1,
		1, 0, 1,
		1, 1, 1,
	}, 3, 3)

	labels, n := Components(m)

	require.Equal(t, 1, n)
	for p, v := range m.Data() {
		if v != 0 {
			assert.Equal(t, 1, labels.Data()[p])
		}
	}
}

func TestComponents_IDsAreCompact(t *testing.T) {
	m := maskFrom(t, []int{
		1, 0, 1, 0, 1,
		0, 0, 0, 0, 0,
		1, 0, 0, 0, 1,
	}, 3, 5)

	labels, n := Components(m)

	require.Equal(t, 5, n)
	seen := make(map[int]bool)
	for _, l := range labels.Data() {
		if l != 0 {
			seen[l] = true
		}
	}
	for id := 1; id <= n; id++ {
		assert.True(t, seen[id], "label %d missing", id)
	}
}
