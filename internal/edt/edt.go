// Package edt computes exact Euclidean distance transforms on 2D grids.
//
// The implementation is the two-pass lower-envelope-of-parabolas algorithm
// of Felzenszwalb & Huttenlocher ("Distance Transforms of Sampled
// Functions", 2012): a 1D squared-distance transform down every column,
// then across every row. Distances are exact Euclidean, not chamfer
// approximations, so results carry sub-pixel precision after the final
// square root.
package edt

import (
	"math"

	"github.com/born-ml/segmap/internal/grid"
	"github.com/born-ml/segmap/internal/parallel"
)

// unreached stands in for infinity inside the envelope passes. Large enough
// to dominate any squared grid distance, small enough to keep the parabola
// intersection arithmetic finite.
const unreached = 1e20

// Transform returns, for every cell of an h×w grid, the Euclidean distance
// to the nearest cell where seed reports true.
//
// If no cell is a seed, every distance is +Inf.
func Transform(h, w int, seed func(i, j int) bool) *grid.Grid[float64] {
	out := grid.MustNew[float64](h, w)
	d := out.Data()

	seeds := 0
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if seed(i, j) {
				seeds++
			} else {
				d[i*w+j] = unreached
			}
		}
	}
	if seeds == 0 {
		out.Fill(math.Inf(1))
		return out
	}

	cfg := parallel.Default()

	// Vertical pass: squared distance within each column.
	parallel.ForChunks(w, cfg, func(lo, hi int) {
		col := make([]float64, h)
		sq := make([]float64, h)
		v := make([]int, h)
		z := make([]float64, h+1)
		for j := lo; j < hi; j++ {
			for i := 0; i < h; i++ {
				col[i] = d[i*w+j]
			}
			envelope(col, sq, v, z)
			for i := 0; i < h; i++ {
				d[i*w+j] = sq[i]
			}
		}
	})

	// Horizontal pass over the column results completes the 2D transform.
	parallel.ForChunks(h, cfg, func(lo, hi int) {
		sq := make([]float64, w)
		v := make([]int, w)
		z := make([]float64, w+1)
		for i := lo; i < hi; i++ {
			row := d[i*w : (i+1)*w]
			envelope(row, sq, v, z)
			copy(row, sq)
		}
	})

	for p := range d {
		d[p] = math.Sqrt(d[p])
	}
	return out
}

// FromMask returns the distance of every cell to the nearest cell of mask
// holding value. Label fields for the weighting pipeline are built this way,
// one call per component ID.
func FromMask(mask *grid.Grid[int], value int) *grid.Grid[float64] {
	return Transform(mask.H(), mask.W(), func(i, j int) bool {
		return mask.At(i, j) == value
	})
}

// envelope computes the 1D squared-distance transform of f into sq.
// v and z are caller-provided scratch (len(f) and len(f)+1) holding the
// envelope's parabola vertices and boundary abscissas.
func envelope(f, sq []float64, v []int, z []float64) {
	n := len(f)
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		sq[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the abscissa where the parabolas rooted at q and p
// (with heights f[q], f[p]) cross.
func intersect(f []float64, q, p int) float64 {
	return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*(q-p))
}
