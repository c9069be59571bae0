// Package label assigns connected-component IDs to binary masks.
//
// Foreground is any nonzero cell. Connectivity is 8-connected: diagonal
// neighbors belong to the same component. Labeling is the classic two-pass
// scan with union-find equivalence merging.
package label

import "github.com/born-ml/segmap/internal/grid"

// Components labels the 8-connected foreground regions of mask.
//
// Returns a grid of the same shape where background cells are 0 and each
// component's cells carry a distinct ID from 1..count, numbered in raster
// order of first appearance, plus the component count.
func Components(mask *grid.Grid[int]) (*grid.Grid[int], int) {
	h, w := mask.H(), mask.W()
	labels := grid.MustNew[int](h, w)

	src := mask.Data()
	dst := labels.Data()

	uf := newUnionFind()

	// First pass: provisional labels from the already-visited neighbors
	// (west, northwest, north, northeast), merging equivalences.
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			p := i*w + j
			if src[p] == 0 {
				continue
			}

			best := 0
			merge := func(q int) {
				if l := dst[q]; l != 0 {
					if best == 0 {
						best = l
					} else {
						uf.union(best, l)
					}
				}
			}

			if j > 0 {
				merge(p - 1)
			}
			if i > 0 {
				if j > 0 {
					merge(p - w - 1)
				}
				merge(p - w)
				if j < w-1 {
					merge(p - w + 1)
				}
			}

			if best == 0 {
				best = uf.makeSet()
			}
			dst[p] = best
		}
	}

	// Second pass: collapse each provisional label to its root and renumber
	// the roots compactly in raster order.
	next := 0
	compact := make(map[int]int)
	for p, l := range dst {
		if l == 0 {
			continue
		}
		root := uf.find(l)
		id, ok := compact[root]
		if !ok {
			next++
			id = next
			compact[root] = id
		}
		dst[p] = id
	}

	return labels, next
}

// unionFind tracks label equivalences discovered during the first pass.
// Labels are 1-based; index 0 of parent is unused.
type unionFind struct {
	parent []int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make([]int, 1, 64)}
}

func (u *unionFind) makeSet() int {
	id := len(u.parent)
	u.parent = append(u.parent, id)
	return id
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]] // path halving
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	// Keep the smaller root so raster-order renumbering stays stable.
	if ra < rb {
		u.parent[rb] = ra
	} else {
		u.parent[ra] = rb
	}
}
