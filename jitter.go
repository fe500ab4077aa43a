package glyphmask

import "math/rand/v2"

// Per-cell visual variation: which size variant to stamp and how far
// to displace it from its exact grid position. The zero value is the
// identity (base variant, no displacement).
type cellVariation struct {
	variant int
	dx, dy  int
}

// Decides the per-cell variation of a run. When disabled it always
// returns the identity variation, making runs fully deterministic.
// When enabled, each cell gets its own generator seeded from the run
// seed and the cell index, so results are byte-identical across reruns
// with the same seed no matter how cells are distributed over workers.
type variationPolicy struct {
	enabled     bool
	numVariants int
	offsetRange int
	seed        uint64
}

func newVariationPolicy(config *Config, numVariants int, seed uint64) variationPolicy {
	if !config.Randomize {
		return variationPolicy{}
	}
	return variationPolicy{
		enabled:     true,
		numVariants: numVariants,
		offsetRange: int(float64(config.GlyphSize)*config.PositionJitter),
		seed:        seed,
	}
}

// Draw order is fixed (variant, then dx, then dy) so that outputs stay
// stable across releases for a given seed.
func (self *variationPolicy) at(cellIndex uint64) cellVariation {
	if !self.enabled { return cellVariation{} }
	rng := rand.New(rand.NewPCG(self.seed, cellIndex))
	var variation cellVariation
	if self.numVariants > 1 {
		variation.variant = rng.IntN(self.numVariants)
	}
	if self.offsetRange > 0 {
		span := self.offsetRange*2 + 1
		variation.dx = rng.IntN(span) - self.offsetRange
		variation.dy = rng.IntN(span) - self.offsetRange
	}
	return variation
}
