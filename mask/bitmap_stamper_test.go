package mask

import "testing"

func TestBitmapStamperBasics(t *testing.T) {
	stamper := NewBitmapStamper()

	glyphMask, err := stamper.Mask('A', 13)
	if err != nil { t.Fatal(err) }
	if glyphMask == nil { t.Fatal("'A' produced no coverage") }
	if glyphMask.Rect.Min.Y >= 0 {
		t.Fatalf("expected ink above the baseline, mask rect is %v", glyphMask.Rect)
	}
	inked := 0
	for _, value := range glyphMask.Pix {
		if value > 0 { inked += 1 }
	}
	if inked == 0 { t.Fatal("'A' mask has no inked pixels") }

	spaceMask, err := stamper.Mask(' ', 13)
	if err != nil { t.Fatal(err) }
	if spaceMask != nil { t.Fatal("space glyph produced coverage") }
}

func TestBitmapStamperScaling(t *testing.T) {
	stamper := NewBitmapStamper()
	small, err := stamper.Mask('#', 13)
	if err != nil { t.Fatal(err) }
	large, err := stamper.Mask('#', 26)
	if err != nil { t.Fatal(err) }
	if large.Rect.Dx() <= small.Rect.Dx() || large.Rect.Dy() <= small.Rect.Dy() {
		str := "scaling up didn't grow the mask (13px %v vs 26px %v)"
		t.Fatalf(str, small.Rect, large.Rect)
	}

	if stamper.Ascent(26) != 2*stamper.Ascent(13) {
		t.Fatalf("ascent didn't scale linearly: %d vs %d", stamper.Ascent(13), stamper.Ascent(26))
	}
	if ascent := stamper.Ascent(13); ascent < 1 || ascent > 13 {
		t.Fatalf("native ascent %d out of range", ascent)
	}
}

func TestBitmapStamperUncoveredGlyph(t *testing.T) {
	// glyphs outside the face's coverage degrade to the replacement
	// glyph instead of failing the run
	stamper := NewBitmapStamper()
	glyphMask, err := stamper.Mask('あ', 13) // hiragana, not in Face7x13
	if err != nil { t.Fatal(err) }
	if glyphMask == nil { t.Fatal("expected replacement glyph coverage, got none") }
}
