package mask

import "image"
import "image/draw"
import "math"

import xdraw "golang.org/x/image/draw"
import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/math/fixed"

var _ Stamper = (*BitmapStamper)(nil)

// A [Stamper] that rasterizes glyphs from the built-in
// [golang.org/x/image/font/basicfont.Face7x13] bitmap face, scaled to
// the requested size with nearest-neighbor interpolation. Quality is
// noticeably blockier than [FontStamper], but it has zero external
// requirements, which is exactly what makes it the fallback when no
// usable system font can be found: a run degrades instead of failing.
type BitmapStamper struct {
	face *basicfont.Face
}

// Creates a [BitmapStamper] over Face7x13.
func NewBitmapStamper() *BitmapStamper {
	return &BitmapStamper{ face: basicfont.Face7x13 }
}

// Satisfies the [Stamper] interface.
func (self *BitmapStamper) Mask(glyph rune, sizePx int) (*image.Alpha, error) {
	dot := fixed.Point26_6{}
	rect, src, srcPoint, _, ok := self.face.Glyph(dot, glyph)
	if !ok {
		// Face7x13 covers ASCII and latin-1; for anything else we
		// degrade to the replacement glyph it ships
		rect, src, srcPoint, _, ok = self.face.Glyph(dot, '�')
		if !ok { return nil, nil }
	}
	if rect.Empty() { return nil, nil }

	// extract the native-size coverage, baseline-origin; the face
	// reports a full cell even for glyphs without any ink (spaces),
	// so those are detected and reported as empty here
	native := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(native, native.Bounds(), src, srcPoint, draw.Src)
	if !anyInk(native.Pix) { return nil, nil }

	// scale to the requested size relative to the face height
	scale := float64(sizePx)/float64(self.face.Height)
	width  := scaledDim(rect.Dx(), scale)
	height := scaledDim(rect.Dy(), scale)
	glyphMask := image.NewAlpha(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(glyphMask, glyphMask.Bounds(), native, native.Bounds(), xdraw.Src, nil)
	glyphMask.Rect = glyphMask.Rect.Add(image.Pt(
		int(math.Round(float64(rect.Min.X)*scale)),
		int(math.Round(float64(rect.Min.Y)*scale)),
	))
	return glyphMask, nil
}

// Satisfies the [Stamper] interface.
func (self *BitmapStamper) Ascent(sizePx int) int {
	scale := float64(sizePx)/float64(self.face.Height)
	return int(math.Round(float64(self.face.Ascent)*scale))
}

func anyInk(pix []uint8) bool {
	for _, value := range pix {
		if value > 0 { return true }
	}
	return false
}

func scaledDim(value int, scale float64) int {
	scaled := int(math.Round(float64(value)*scale))
	if scaled < 1 { return 1 }
	return scaled
}
