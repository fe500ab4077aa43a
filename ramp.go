package glyphmask

// A Ramp is an ordered sequence of glyphs, darkest-first: index 0 is
// stamped over the darkest regions of the photo and the last index over
// the brightest ones. Ramps with repeated glyphs are allowed.
type Ramp []rune

// Creates a [Ramp] from a string of glyphs ordered darkest-first.
func NewRamp(glyphs string) Ramp { return Ramp(glyphs) }

// Maps a luminance value in [0, 255] to one glyph of the ramp. The
// mapping is index = floor(luminance/255*(N - 1)), clamped to the ramp
// bounds, so luminance 0 always picks the first glyph and luminance
// 255 the last one. Pure function; panics on empty ramps (prevented
// earlier by [Config.Validate]()).
func (self Ramp) Pick(luminance float64) rune {
	index := int((luminance/255.0)*float64(len(self) - 1))
	if index < 0 { index = 0 }
	if index >= len(self) { index = len(self) - 1 }
	return self[index]
}
