package mask

import "image"

// Stamper is the interface between the generation pipeline and an
// actual glyph rasterization backend.
//
// Returned masks use baseline-origin coordinates: their Rect is
// positioned so that stamping them at point P places the glyph's
// baseline dot at P. Masks must be treated as read-only by callers,
// as implementations are allowed to cache and share them.
//
// Stampers can't be used concurrently.
type Stamper interface {
	// Rasterizes the coverage of the given glyph at the given pixel
	// size. A nil mask with a nil error means the glyph has no ink
	// (spaces, but also glyphs missing from the backend's font).
	Mask(glyph rune, sizePx int) (*image.Alpha, error)

	// Returns the backend's ascent in pixels at the given size, i.e.
	// the distance between the top of a glyph cell and the baseline.
	Ascent(sizePx int) int
}
