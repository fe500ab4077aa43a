package mask

import "fmt"
import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/0x0ndra/glyphmask/cache"

var _ Stamper = (*FontStamper)(nil)

// A [Stamper] backed by a real sfnt font: glyph outlines are loaded
// through [sfnt.Font.LoadGlyph]() and rasterized with
// [golang.org/x/image/vector.Rasterizer].
//
// The underlying sfnt.Buffer and vector rasterizer are stateful, so a
// FontStamper can't be used concurrently; create one per worker. The
// font itself and an optional [cache.Cache] can be shared freely.
type FontStamper struct {
	sfntFont   *sfnt.Font
	buffer     sfnt.Buffer
	rasterizer vector.Rasterizer
	maskCache  *cache.Cache
	ascents    map[int]int // sizePx to ascent, lazily filled
}

// Creates a [FontStamper] for the given font. Panics on nil fonts.
func NewFontStamper(sfntFont *sfnt.Font) *FontStamper {
	if sfntFont == nil { panic("nil font") } // likely a dev mistake
	return &FontStamper{
		sfntFont: sfntFont,
		ascents: make(map[int]int, 8),
	}
}

// Sets a cache for rasterized glyph masks. Nil disables caching.
// Since repeated (glyph, size) pairs are the norm in a character grid,
// a shared cache cuts most of the rasterization work of a run.
func (self *FontStamper) SetCache(maskCache *cache.Cache) {
	self.maskCache = maskCache
}

// Satisfies the [Stamper] interface.
//
// Glyphs that the font doesn't cover are reported as empty rather
// than as errors: a hole in the grid reads better than aborting a
// whole run over one exotic ramp character.
func (self *FontStamper) Mask(glyph rune, sizePx int) (*image.Alpha, error) {
	var key cache.MaskKey
	if self.maskCache != nil {
		key = cache.NewMaskKey(glyph, sizePx)
		glyphMask, found := self.maskCache.GetMask(key)
		if found { return glyphMask, nil }
	}

	glyphIndex, err := self.sfntFont.GlyphIndex(&self.buffer, glyph)
	if err != nil {
		return nil, fmt.Errorf("glyph index lookup for %q: %w", glyph, err)
	}
	if glyphIndex == 0 { return nil, nil } // glyph not covered by the font

	segments, err := self.sfntFont.LoadGlyph(&self.buffer, glyphIndex, fixed.I(sizePx), nil)
	if err != nil {
		return nil, fmt.Errorf("loading glyph %q at %dpx: %w", glyph, sizePx, err)
	}

	glyphMask := self.rasterize(segments)
	if self.maskCache != nil && glyphMask != nil {
		self.maskCache.PassMask(key, glyphMask)
	}
	return glyphMask, nil
}

// Satisfies the [Stamper] interface.
func (self *FontStamper) Ascent(sizePx int) int {
	ascent, known := self.ascents[sizePx]
	if known { return ascent }
	metrics, err := self.sfntFont.Metrics(&self.buffer, fixed.I(sizePx), font.HintingNone)
	if err != nil {
		ascent = (sizePx*3)/4 // rough but serviceable approximation
	} else {
		ascent = metrics.Ascent.Ceil()
	}
	self.ascents[sizePx] = ascent
	return ascent
}

// Rasterizes already-scaled glyph segments into a baseline-origin
// alpha mask. Returns nil when the outline has no lines or curves
// (space glyphs and the like).
func (self *FontStamper) rasterize(segments sfnt.Segments) *image.Alpha {
	if !hasInk(segments) { return nil }

	// normalize the outline to the positive quadrant, as the vector
	// rasterizer expects coords starting at (0, 0)
	bounds := segments.Bounds()
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	offsetX := -fixed.I(minX)
	offsetY := -fixed.I(minY)
	width  := (bounds.Max.X + offsetX).Ceil()
	height := (bounds.Max.Y + offsetY).Ceil()
	if width <= 0 || height <= 0 { return nil }

	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src
	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.rasterizer.MoveTo(
				fixedToFloat32(segment.Args[0].X + offsetX),
				fixedToFloat32(segment.Args[0].Y + offsetY),
			)
		case sfnt.SegmentOpLineTo:
			self.rasterizer.LineTo(
				fixedToFloat32(segment.Args[0].X + offsetX),
				fixedToFloat32(segment.Args[0].Y + offsetY),
			)
		case sfnt.SegmentOpQuadTo:
			self.rasterizer.QuadTo(
				fixedToFloat32(segment.Args[0].X + offsetX),
				fixedToFloat32(segment.Args[0].Y + offsetY),
				fixedToFloat32(segment.Args[1].X + offsetX),
				fixedToFloat32(segment.Args[1].Y + offsetY),
			)
		case sfnt.SegmentOpCubeTo:
			self.rasterizer.CubeTo(
				fixedToFloat32(segment.Args[0].X + offsetX),
				fixedToFloat32(segment.Args[0].Y + offsetY),
				fixedToFloat32(segment.Args[1].X + offsetX),
				fixedToFloat32(segment.Args[1].Y + offsetY),
				fixedToFloat32(segment.Args[2].X + offsetX),
				fixedToFloat32(segment.Args[2].Y + offsetY),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}

	glyphMask := image.NewAlpha(image.Rect(0, 0, width, height))
	// the source is a uniform, so the sampling start point is irrelevant
	self.rasterizer.Draw(glyphMask, glyphMask.Bounds(), image.Opaque, image.Point{})

	// translate the mask so stamping at a baseline dot lands correctly
	glyphMask.Rect = glyphMask.Rect.Add(image.Pt(minX, minY))
	return glyphMask
}

// Whether the outline contains anything beyond MoveTo operations.
func hasInk(segments sfnt.Segments) bool {
	for _, segment := range segments {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}

func fixedToFloat32(value fixed.Int26_6) float32 {
	return float32(value)/64.0
}
