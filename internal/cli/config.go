package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/born-ml/segmap/internal/synth"
	"github.com/born-ml/segmap/internal/weight"
)

// fileConfig is the TOML parameter file layout:
//
//	[synth]
//	circles = 12
//	size = 256
//	cell_size = 20.0
//	legacy_radius_scale = false
//	seed = 42
//
//	[weight]
//	w0 = 10.0
//	sigma = 5.0
//	[weight.class_weights]
//	"0" = 1.0
//	"1" = 5.0
type fileConfig struct {
	Synth  synthSection  `toml:"synth"`
	Weight weightSection `toml:"weight"`
}

type synthSection struct {
	Circles           int     `toml:"circles"`
	Size              int     `toml:"size"`
	CellSize          float64 `toml:"cell_size"`
	LegacyRadiusScale bool    `toml:"legacy_radius_scale"`
	Seed              int64   `toml:"seed"`
}

type weightSection struct {
	W0           float64            `toml:"w0"`
	Sigma        float64            `toml:"sigma"`
	ClassWeights map[string]float64 `toml:"class_weights"`
}

func defaultFileConfig() fileConfig {
	sc := synth.DefaultConfig()
	wc := weight.DefaultConfig()
	return fileConfig{
		Synth: synthSection{
			Circles:  sc.Circles,
			Size:     sc.Size,
			CellSize: sc.CellSize,
			Seed:     42,
		},
		Weight: weightSection{
			W0:    wc.W0,
			Sigma: wc.Sigma,
		},
	}
}

// loadConfig returns the defaults overlaid with the TOML file at path.
// An empty path returns the defaults unchanged.
func loadConfig(path string) (fileConfig, error) {
	fc := defaultFileConfig()
	if path == "" {
		return fc, nil
	}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fc, fmt.Errorf("load config %s: %w", path, err)
	}
	return fc, nil
}

func (s synthSection) synthConfig() synth.Config {
	return synth.Config{
		Circles:           s.Circles,
		Size:              s.Size,
		CellSize:          s.CellSize,
		LegacyRadiusScale: s.LegacyRadiusScale,
	}
}

func (s weightSection) weightConfig() (weight.Config, error) {
	cfg := weight.Config{W0: s.W0, Sigma: s.Sigma}
	if len(s.ClassWeights) > 0 {
		cfg.ClassWeights = make(map[int]float64, len(s.ClassWeights))
		for k, v := range s.ClassWeights {
			cls, err := strconv.Atoi(k)
			if err != nil {
				return cfg, fmt.Errorf("class_weights key %q is not an integer mask value", k)
			}
			cfg.ClassWeights[cls] = v
		}
	}
	return cfg, nil
}

// parseClassWeights parses a flag value like "0=1,1=5" into a class-weight
// table.
func parseClassWeights(s string) (map[int]float64, error) {
	if s == "" {
		return nil, nil
	}
	out := make(map[int]float64)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("class weight %q is not of the form value=weight", pair)
		}
		cls, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("class weight key %q is not an integer mask value", k)
		}
		wv, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("class weight value %q is not a number", v)
		}
		out[cls] = wv
	}
	return out, nil
}
