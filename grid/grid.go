// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides the public API for segmap's 2D grid container.
//
// Grids carry every array the library touches: binary masks, component
// label grids, distance fields, and weight maps. Storage is row-major;
// (i, j) addresses row i, column j.
//
// Example:
//
//	mask := grid.MustNew[int](256, 256)
//	mask.Set(10, 20, 1)
//	wm, err := weight.Map(mask, weight.DefaultConfig())
package grid

import (
	"github.com/born-ml/segmap/internal/grid"
)

// Value is the constraint for grid cell types.
// Supported: int, int32, int64, uint8, float32, float64.
type Value = grid.Value

// Grid is a dense 2D array of H×W cells.
type Grid[T Value] = grid.Grid[T]

// New creates a zero-filled grid of height h and width w.
func New[T Value](h, w int) (*Grid[T], error) {
	return grid.New[T](h, w)
}

// MustNew is New for shapes the call site knows are valid. Panics on error.
func MustNew[T Value](h, w int) *Grid[T] {
	return grid.MustNew[T](h, w)
}

// FromSlice creates an h×w grid from row-major data of length h*w.
// The data is copied.
func FromSlice[T Value](data []T, h, w int) (*Grid[T], error) {
	return grid.FromSlice(data, h, w)
}

// SameShape reports whether two grids have identical dimensions,
// regardless of cell type.
func SameShape[A, B Value](a *Grid[A], b *Grid[B]) bool {
	return grid.SameShape(a, b)
}
