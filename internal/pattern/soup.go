package pattern

import (
	"github.com/aquilax/go-perlin"

	"sparselife/internal/life"
	"sparselife/pkg/core"
)

// SoupConfig controls random soup generation.
type SoupConfig struct {
	Width  int
	Height int
	Seed   int64

	// Fill is the target live fraction in [0, 1].
	Fill float64

	// NoiseScale stretches the perlin field; larger values give larger
	// blobs of density.
	NoiseScale float64
}

// DefaultSoupConfig returns the standard soup configuration.
func DefaultSoupConfig() SoupConfig {
	return SoupConfig{
		Width:      48,
		Height:     48,
		Seed:       1337,
		Fill:       0.35,
		NoiseScale: 12,
	}
}

// Soup generates a random starting pattern. A perlin noise field clusters
// the density into organic patches and a deterministic RNG dithers the
// cell-level decision, so the same config always yields the same soup.
func Soup(cfg SoupConfig) life.World {
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	if cfg.NoiseScale <= 0 {
		cfg.NoiseScale = 12
	}

	noise := perlin.NewPerlin(2, 2, 3, cfg.Seed)
	rng := core.NewRNG(cfg.Seed)

	var live []life.Coord
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			field := 0.5 * (noise.Noise2D(float64(x)/cfg.NoiseScale, float64(y)/cfg.NoiseScale) + 1)
			score := 0.6*field + 0.4*rng.Float64()
			if score < cfg.Fill {
				live = append(live, life.Coord{X: x, Y: y})
			}
		}
	}
	return life.NewWorld(live, 0)
}
