// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package synth provides the public API for synthetic mask generation.
//
// RandomCircles produces microscopy-style binary masks of scattered,
// non-touching disks, giving the weighting pipeline something to chew on
// when no real annotated data is at hand.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	mask := synth.RandomCircles(rng, synth.Config{
//	    Circles:  12,
//	    Size:     256,
//	    CellSize: 20,
//	})
package synth

import (
	"math/rand"

	"github.com/born-ml/segmap/internal/grid"
	"github.com/born-ml/segmap/internal/synth"
)

// Config controls mask synthesis. Zero-valued fields fall back to defaults.
type Config = synth.Config

// DefaultConfig returns the synthesis parameters used by the demo tooling.
func DefaultConfig() Config {
	return synth.DefaultConfig()
}

// RandomCircles rasterizes cfg.Circles filled disks into a binary
// Size×Size mask, deterministic for a fixed rng state.
func RandomCircles(rng *rand.Rand, cfg Config) *grid.Grid[int] {
	return synth.RandomCircles(rng, cfg)
}
