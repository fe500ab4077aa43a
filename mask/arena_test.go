package mask

import "image"
import "testing"

func solidMask(width, height int, value uint8) *image.Alpha {
	glyphMask := image.NewAlpha(image.Rect(0, 0, width, height))
	for i := range glyphMask.Pix { glyphMask.Pix[i] = value }
	return glyphMask
}

func TestArenaStampUnion(t *testing.T) {
	arena := NewArena(8, 8)
	arena.Stamp(solidMask(4, 4, 255), image.Pt(0, 0))
	arena.Stamp(solidMask(4, 4, 100), image.Pt(2, 2)) // overlaps

	coverage := arena.Coverage()
	tests := []struct {
		x, y int
		out uint8
	}{
		{0, 0, 255}, {3, 3, 255}, // first stamp wins where stronger
		{4, 4, 100}, {5, 5, 100}, // second stamp alone
		{2, 2, 255}, // overlap keeps the max, weaker stamp can't erase
		{7, 7, 0},   // untouched
	}
	for i, test := range tests {
		out := coverage.AlphaAt(test.x, test.y).A
		if out != test.out {
			str := "test #%d: coverage at (%d, %d) expected %d, but got %d"
			t.Fatalf(str, i, test.x, test.y, test.out, out)
		}
	}
}

func TestArenaStampIdempotent(t *testing.T) {
	arenaA := NewArena(8, 8)
	arenaB := NewArena(8, 8)
	glyphMask := solidMask(3, 3, 200)
	arenaA.Stamp(glyphMask, image.Pt(1, 1))
	arenaB.Stamp(glyphMask, image.Pt(1, 1))
	arenaB.Stamp(glyphMask, image.Pt(1, 1)) // re-stamping changes nothing
	for i := range arenaA.Coverage().Pix {
		if arenaA.Coverage().Pix[i] != arenaB.Coverage().Pix[i] {
			t.Fatal("re-stamping the same mask changed the arena")
		}
	}
}

func TestArenaStampClipping(t *testing.T) {
	arena := NewArena(4, 4)
	// stamps hanging off every edge must clip instead of panicking
	arena.Stamp(solidMask(3, 3, 255), image.Pt(-2, -2))
	arena.Stamp(solidMask(3, 3, 255), image.Pt(3, 3))
	arena.Stamp(solidMask(3, 3, 255), image.Pt(-10, 0))  // fully outside
	arena.Stamp(solidMask(3, 3, 255), image.Pt(100, 100)) // fully outside
	arena.Stamp(nil, image.Pt(0, 0)) // empty glyph

	coverage := arena.Coverage()
	if coverage.AlphaAt(0, 0).A != 255 || coverage.AlphaAt(3, 3).A != 255 {
		t.Fatal("clipped stamps didn't reach the expected corners")
	}
	if coverage.AlphaAt(2, 2).A != 0 {
		t.Fatal("center of the arena shouldn't be covered")
	}
}

func TestArenaBaselineOffsetMask(t *testing.T) {
	// masks with a non-zero Rect.Min (baseline-origin glyphs) must
	// land relative to the stamp point
	glyphMask := solidMask(2, 2, 255)
	glyphMask.Rect = glyphMask.Rect.Add(image.Pt(0, -2)) // ink above baseline
	arena := NewArena(4, 4)
	arena.Stamp(glyphMask, image.Pt(1, 3))

	coverage := arena.Coverage()
	if coverage.AlphaAt(1, 1).A != 255 || coverage.AlphaAt(2, 2).A != 255 {
		t.Fatal("baseline-origin mask landed at the wrong position")
	}
	if coverage.AlphaAt(1, 3).A != 0 {
		t.Fatal("coverage found below the baseline")
	}
}

func TestArenaMerge(t *testing.T) {
	arenaA := NewArena(8, 8)
	arenaB := NewArena(8, 8)
	arenaA.Stamp(solidMask(4, 4, 200), image.Pt(0, 0))
	arenaB.Stamp(solidMask(4, 4, 120), image.Pt(2, 2)) // overlaps

	// merging in either order must yield the per-pixel max
	merged := NewArena(8, 8)
	merged.Merge(arenaB)
	merged.Merge(arenaA)
	arenaA.Merge(arenaB)
	for i := range merged.Coverage().Pix {
		if merged.Coverage().Pix[i] != arenaA.Coverage().Pix[i] {
			t.Fatal("merge results depend on merge order")
		}
	}

	tests := []struct {
		x, y int
		out uint8
	}{
		{0, 0, 200}, {3, 3, 200}, {4, 4, 120}, {5, 5, 120}, {7, 7, 0},
	}
	for i, test := range tests {
		out := arenaA.Coverage().AlphaAt(test.x, test.y).A
		if out != test.out {
			str := "test #%d: merged coverage at (%d, %d) expected %d, but got %d"
			t.Fatalf(str, i, test.x, test.y, test.out, out)
		}
	}
}

func TestArenaBoldSupersetOfThin(t *testing.T) {
	glyphMask := solidMask(2, 3, 255)
	offsets := []int{-1, 0, 1}

	thin := NewArena(8, 8)
	thin.Stamp(glyphMask, image.Pt(3, 3))

	bold := NewArena(8, 8)
	for _, dx := range offsets {
		for _, dy := range offsets {
			bold.Stamp(glyphMask, image.Pt(3 + dx, 3 + dy))
		}
	}

	thinCovered, boldCovered := 0, 0
	for i := range thin.Coverage().Pix {
		if thin.Coverage().Pix[i] > 0 {
			thinCovered += 1
			if bold.Coverage().Pix[i] == 0 {
				t.Fatal("bold coverage is missing a pixel the thin stamp has")
			}
		}
		if bold.Coverage().Pix[i] > 0 { boldCovered += 1 }
	}
	if boldCovered <= thinCovered {
		t.Fatal("bold stamping didn't expand coverage")
	}
}
