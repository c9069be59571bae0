// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package weight_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/segmap/grid"
	"github.com/born-ml/segmap/synth"
	"github.com/born-ml/segmap/weight"
)

// TestPublicAPI exercises the exported surface end to end: synthesize a
// mask, weight it, and check the aliases line up across packages.
func TestPublicAPI(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	mask := synth.RandomCircles(rng, synth.Config{Circles: 8, Size: 64, CellSize: 12})

	wm, err := weight.Map(mask, weight.DefaultConfig())
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	if !grid.SameShape(mask, wm) {
		t.Errorf("weight map shape %dx%d differs from mask %dx%d",
			wm.H(), wm.W(), mask.H(), mask.W())
	}
	for _, v := range wm.Data() {
		if v < 0 {
			t.Fatalf("negative weight %v", v)
		}
	}
}

// TestDefaultConfig verifies the published default hyperparameters.
func TestDefaultConfig(t *testing.T) {
	cfg := weight.DefaultConfig()
	if cfg.W0 != 10 {
		t.Errorf("W0 = %v, want 10", cfg.W0)
	}
	if cfg.Sigma != 5 {
		t.Errorf("Sigma = %v, want 5", cfg.Sigma)
	}
	if cfg.ClassWeights != nil {
		t.Errorf("ClassWeights = %v, want nil", cfg.ClassWeights)
	}
}
