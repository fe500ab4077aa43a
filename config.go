package glyphmask

import "fmt"
import "image/color"

// The default glyph ramp, ordered from the glyphs with the most ink
// (used for the darkest regions) to the ones with the least.
const DefaultRamp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

// Config gathers every parameter of a generation run. The zero value
// is not usable; start from [DefaultConfig]() and adjust from there.
// Configs are treated as immutable values for the duration of a
// [Generator.Generate]() call.
type Config struct {
	// Glyph ramp ordered darkest-first. Must be non-empty.
	Ramp string

	// Number of character cells across the output. Must be >= 1.
	GridWidth int

	// Base glyph size, in output pixels. Each grid cell is a
	// GlyphSize x GlyphSize square in the output image. Must be >= 1.
	GlyphSize int

	// Size jitter bounds, as multipliers of GlyphSize. Only relevant
	// while Randomize is set. Both must be > 0 and Min <= Max.
	SizeJitterMin float64
	SizeJitterMax float64

	// Maximum positional jitter, as a fraction of GlyphSize. Only
	// relevant while Randomize is set. Must be >= 0.
	PositionJitter float64

	// Whether per-cell size and position variation is applied at all.
	// When unset, every glyph is stamped at the base size on an exact
	// grid and runs are fully deterministic.
	Randomize bool

	// Brightness and contrast multipliers applied to the photo before
	// compositing, in that order. 1.0 means no change. Must be > 0.
	Brightness float64
	Contrast   float64

	// Whether glyph strokes are thickened by re-stamping the glyph at
	// every combination of BoldOffsets in x and y.
	Bold        bool
	BoldOffsets []int

	// Color painted wherever no glyph stroke covers the output.
	Background color.RGBA
}

// Returns a configuration matching the classic defaults: 80 cells
// across, 25px glyphs, organic randomization and bold strokes on,
// black background.
func DefaultConfig() Config {
	return Config{
		Ramp:           DefaultRamp,
		GridWidth:      80,
		GlyphSize:      25,
		SizeJitterMin:  0.6,
		SizeJitterMax:  1.4,
		PositionJitter: 0.15,
		Randomize:      true,
		Brightness:     1.8,
		Contrast:       1.3,
		Bold:           true,
		BoldOffsets:    []int{-1, 0, 1},
		Background:     color.RGBA{0, 0, 0, 255},
	}
}

// Checks every invariant documented on the [Config] fields. Returned
// errors wrap [ErrEmptyRamp], [ErrInvalidDimensions] or
// [ErrInvalidConfig] as corresponding.
func (self *Config) Validate() error {
	if len(self.Ramp) == 0 { return ErrEmptyRamp }
	if self.GridWidth < 1 {
		return fmt.Errorf("%w: grid width %d", ErrInvalidDimensions, self.GridWidth)
	}
	if self.GlyphSize < 1 {
		return fmt.Errorf("%w: glyph size %d", ErrInvalidDimensions, self.GlyphSize)
	}
	if self.SizeJitterMin <= 0 || self.SizeJitterMax <= 0 {
		return fmt.Errorf("%w: size jitter bounds must be positive", ErrInvalidConfig)
	}
	if self.SizeJitterMin > self.SizeJitterMax {
		return fmt.Errorf("%w: size jitter min %.3f > max %.3f", ErrInvalidConfig, self.SizeJitterMin, self.SizeJitterMax)
	}
	if self.PositionJitter < 0 {
		return fmt.Errorf("%w: position jitter %.3f < 0", ErrInvalidConfig, self.PositionJitter)
	}
	if self.Brightness <= 0 {
		return fmt.Errorf("%w: brightness %.3f <= 0", ErrInvalidConfig, self.Brightness)
	}
	if self.Contrast <= 0 {
		return fmt.Errorf("%w: contrast %.3f <= 0", ErrInvalidConfig, self.Contrast)
	}
	if self.Bold && len(self.BoldOffsets) == 0 {
		return fmt.Errorf("%w: bold enabled with no bold offsets", ErrInvalidConfig)
	}
	return nil
}
