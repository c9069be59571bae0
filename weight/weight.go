// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package weight provides the public API for boundary-aware segmentation
// loss weighting.
//
// Map implements the per-pixel weighting of the original U-Net paper
// (Ronneberger, Fischer & Brox, 2015): background pixels lying between two
// nearby object boundaries are up-weighted by a decaying exponential of
// their summed distances to the two nearest components, and an optional
// class-weight table adds a flat per-class term. The caller multiplies the
// result elementwise into its pixel-wise loss.
//
// Example:
//
//	wm, err := weight.Map(mask, weight.Config{
//	    W0:           10,
//	    Sigma:        5,
//	    ClassWeights: map[int]float64{0: 1, 1: 5},
//	})
package weight

import (
	"github.com/born-ml/segmap/internal/grid"
	"github.com/born-ml/segmap/internal/weight"
)

// Config holds the weighting hyperparameters. See the internal package for
// field semantics; zero-valued W0 and Sigma fall back to the paper's
// defaults of 10 and 5.
type Config = weight.Config

// DefaultConfig returns the hyperparameters used in the U-Net paper.
func DefaultConfig() Config {
	return weight.DefaultConfig()
}

// Map computes the weight map for a binary mask. Masks with fewer than two
// connected components yield an all-zero map of the same shape.
func Map(mask *grid.Grid[int], cfg Config) (*grid.Grid[float64], error) {
	return weight.Map(mask, cfg)
}
