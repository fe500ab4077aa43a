package glyphmask

import "errors"

// Returned when a source image has no pixels or a [Config] requests a
// grid width or glyph size below one. These are fatal configuration
// errors; no rendering is attempted.
var ErrInvalidDimensions = errors.New("invalid dimensions (empty source image, grid width < 1 or glyph size < 1)")

// Returned when the glyph ramp of a [Config] has no characters.
var ErrEmptyRamp = errors.New("glyph ramp has no characters")

// Returned when a numeric [Config] field falls outside its documented
// range (e.g. non-positive brightness or an inverted size jitter range).
var ErrInvalidConfig = errors.New("invalid configuration value")
