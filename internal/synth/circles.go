// Package synth generates synthetic binary masks for exercising the
// weighting pipeline without real data.
//
// The masks imitate microscopy-style cell images: filled disks of varying
// radius scattered over a square grid, with a collision rule that keeps
// newly drawn disks from touching already-drawn foreground.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/segmap/internal/grid"
)

// Config controls mask synthesis.
type Config struct {
	Circles  int     // number of disks to draw (default: 12)
	Size     int     // output grid is Size×Size (default: 256)
	CellSize float64 // nominal cell diameter in pixels (default: 20)

	// LegacyRadiusScale reproduces a defective radius rescale carried over
	// from earlier published figures: every sampled radius collapses to the
	// top of the [Size/3, Size] range, so all disks come out the same size.
	// The default maps raw draws linearly across that range instead. Enable
	// only to match old outputs.
	LegacyRadiusScale bool
}

// DefaultConfig returns the synthesis parameters used by the demo tooling.
func DefaultConfig() Config {
	return Config{Circles: 12, Size: 256, CellSize: 20}
}

// RandomCircles rasterizes cfg.Circles filled disks into a binary
// Size×Size mask.
//
// Per disk, three independent uniform integer draws in [0, Size) give the
// center coordinates and a raw radius parameter. The raw radius is rescaled
// into [Size/3, Size] (see Config.LegacyRadiusScale) and the drawn pixel
// radius is scaled/Size * CellSize. Disk pixels whose 8-neighborhood in the
// mask accumulated so far already holds foreground are suppressed, which
// approximately keeps the synthetic cells non-touching: only the pixel's
// own neighbors are checked, not the whole disk.
//
// The result is deterministic for a fixed rng state and contains only 0s
// and 1s. A zero Size or CellSize falls back to the default; a wholly
// zero-valued Config is replaced by DefaultConfig, so an explicit zero
// Circles with a nonzero Size draws nothing. Negative Circles or Size
// panic.
func RandomCircles(rng *rand.Rand, cfg Config) *grid.Grid[int] {
	if cfg.Circles == 0 && cfg.Size == 0 && cfg.CellSize == 0 {
		legacy := cfg.LegacyRadiusScale
		cfg = DefaultConfig()
		cfg.LegacyRadiusScale = legacy
	}
	if cfg.Size == 0 {
		cfg.Size = 256
	}
	if cfg.CellSize == 0 {
		cfg.CellSize = 20
	}
	if cfg.Size < 0 {
		panic(fmt.Sprintf("synth: invalid grid size %d", cfg.Size))
	}
	if cfg.Circles < 0 {
		panic(fmt.Sprintf("synth: invalid circle count %d", cfg.Circles))
	}

	d := cfg.Size
	mask := grid.MustNew[int](d, d)

	for c := 0; c < cfg.Circles; c++ {
		x0 := rng.Intn(d)
		y0 := rng.Intn(d)
		raw := rng.Intn(d)

		scaled := rescaleRadius(raw, d, cfg.LegacyRadiusScale)
		r := scaled / float64(d) * cfg.CellSize

		// The collision rule looks at the mask as it stood before this
		// disk; a snapshot keeps the disk's own pixels from suppressing
		// each other.
		stampDisk(mask, mask.Clone(), x0, y0, r)
	}
	return mask
}

// rescaleRadius maps a raw draw from [0, d) into [d/3, d].
func rescaleRadius(raw, d int, legacy bool) float64 {
	lo, hi := float64(d)/3, float64(d)
	if legacy {
		return hi
	}
	return lo + float64(raw)/float64(d)*(hi-lo)
}

// stampDisk ORs a filled disk of radius r centered at (x0, y0) into mask,
// skipping pixels whose 8-neighborhood in prev already holds foreground.
func stampDisk(mask, prev *grid.Grid[int], x0, y0 int, r float64) {
	ri := int(r) + 1
	r2 := r * r
	for i := x0 - ri; i <= x0+ri; i++ {
		for j := y0 - ri; j <= y0+ri; j++ {
			if !mask.InBounds(i, j) {
				continue
			}
			di, dj := float64(i-x0), float64(j-y0)
			if di*di+dj*dj > r2 {
				continue
			}
			if touchesForeground(prev, i, j) {
				continue
			}
			mask.Set(i, j, 1)
		}
	}
}

// touchesForeground reports whether any 8-neighbor of (i, j) is foreground.
func touchesForeground(mask *grid.Grid[int], i, j int) bool {
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			ni, nj := i+di, j+dj
			if mask.InBounds(ni, nj) && mask.At(ni, nj) != 0 {
				return true
			}
		}
	}
	return false
}
