// Package grid implements the dense 2D container shared by every part of
// segmap: binary masks, component label grids, distance fields, and weight
// maps are all grids of different cell types.
//
// Storage is row-major in a single backing slice. Index (i, j) means row i,
// column j, so a grid of height H and width W holds cell (i, j) at i*W+j.
package grid

import "fmt"

// Value is the constraint for grid cell types.
// Masks and label grids use int, distance fields and weight maps float64,
// decoded image planes uint8.
type Value interface {
	~int | ~int32 | ~int64 | ~uint8 | ~float32 | ~float64
}

// Grid is a dense 2D array of H×W cells.
//
// The zero value is not usable; construct grids with New, MustNew, or
// FromSlice. Core algorithms treat grids as immutable after construction.
type Grid[T Value] struct {
	data []T
	h, w int
}

// New creates a zero-filled grid of height h and width w.
// Returns an error if either dimension is not positive.
func New[T Value](h, w int) (*Grid[T], error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("grid: invalid shape %dx%d (dimensions must be > 0)", h, w)
	}
	return &Grid[T]{data: make([]T, h*w), h: h, w: w}, nil
}

// MustNew is New for shapes the call site knows are valid. Panics on error.
func MustNew[T Value](h, w int) *Grid[T] {
	g, err := New[T](h, w)
	if err != nil {
		panic(err)
	}
	return g
}

// FromSlice creates an h×w grid initialized from data, which must hold
// exactly h*w values in row-major order. The data is copied.
func FromSlice[T Value](data []T, h, w int) (*Grid[T], error) {
	g, err := New[T](h, w)
	if err != nil {
		return nil, err
	}
	if len(data) != h*w {
		return nil, fmt.Errorf("grid: data length %d does not match shape %dx%d", len(data), h, w)
	}
	copy(g.data, data)
	return g, nil
}

// H returns the grid height (number of rows).
func (g *Grid[T]) H() int {
	return g.h
}

// W returns the grid width (number of columns).
func (g *Grid[T]) W() int {
	return g.w
}

// Len returns the total number of cells.
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// InBounds reports whether (i, j) addresses a cell of the grid.
func (g *Grid[T]) InBounds(i, j int) bool {
	return i >= 0 && i < g.h && j >= 0 && j < g.w
}

// At returns the cell at row i, column j.
// Panics if the index is out of range; use InBounds to probe first.
func (g *Grid[T]) At(i, j int) T {
	if !g.InBounds(i, j) {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range for %dx%d grid", i, j, g.h, g.w))
	}
	return g.data[i*g.w+j]
}

// Set stores v at row i, column j.
// Panics if the index is out of range.
func (g *Grid[T]) Set(i, j int, v T) {
	if !g.InBounds(i, j) {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range for %dx%d grid", i, j, g.h, g.w))
	}
	g.data[i*g.w+j] = v
}

// Data returns the backing slice in row-major order.
// Mutating it mutates the grid; hot loops index it directly instead of
// going through At/Set bounds checks.
func (g *Grid[T]) Data() []T {
	return g.data
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{data: make([]T, len(g.data)), h: g.h, w: g.w}
	copy(c.data, g.data)
	return c
}

// SameShape reports whether two grids have identical dimensions,
// regardless of cell type.
func SameShape[A, B Value](a *Grid[A], b *Grid[B]) bool {
	return a.h == b.h && a.w == b.w
}
