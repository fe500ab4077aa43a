package mask

import "image"

// An Arena is a pre-allocated single-channel coverage buffer that a
// generation run stamps its glyphs into. Writes are "set-if-greater":
// overlapping stamps both leave their coverage and later stamps never
// erase earlier ones, so stamping is commutative and idempotent.
//
// Arenas are not concurrent-safe. Parallel runs give each worker its
// own arena and [Arena.Merge]() them afterwards; since merging takes
// the per-pixel maximum, the combined result doesn't depend on worker
// scheduling or merge order.
type Arena struct {
	coverage *image.Alpha
}

// Creates a zero-filled [Arena] of the given pixel dimensions.
func NewArena(width, height int) *Arena {
	return &Arena{ coverage: image.NewAlpha(image.Rect(0, 0, width, height)) }
}

// Returns the underlying coverage buffer. The buffer is owned by the
// arena; treat it as read-only once stamping is over.
func (self *Arena) Coverage() *image.Alpha { return self.coverage }

// Stamps a glyph mask into the arena with its baseline origin placed
// at the given point, clipping whatever falls outside the arena. The
// glyph mask is only read, never modified, so cached masks can be
// stamped any number of times at any position.
func (self *Arena) Stamp(glyphMask *image.Alpha, at image.Point) {
	if glyphMask == nil { return } // empty glyph (e.g. a space)

	target := glyphMask.Rect.Add(at).Intersect(self.coverage.Rect)
	if target.Empty() { return }

	for y := target.Min.Y; y < target.Max.Y; y++ {
		srcIndex := glyphMask.PixOffset(target.Min.X - at.X, y - at.Y)
		dstIndex := self.coverage.PixOffset(target.Min.X, y)
		for x := target.Min.X; x < target.Max.X; x++ {
			value := glyphMask.Pix[srcIndex]
			if value > self.coverage.Pix[dstIndex] {
				self.coverage.Pix[dstIndex] = value
			}
			srcIndex += 1
			dstIndex += 1
		}
	}
}

// Merges another arena of the same dimensions into this one, taking
// the per-pixel maximum. Panics on dimension mismatches.
func (self *Arena) Merge(other *Arena) {
	if self.coverage.Rect != other.coverage.Rect {
		panic("arena dimensions mismatch") // likely a dev mistake
	}
	for index, value := range other.coverage.Pix {
		if value > self.coverage.Pix[index] {
			self.coverage.Pix[index] = value
		}
	}
}
