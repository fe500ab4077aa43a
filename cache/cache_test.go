package cache

import "image"
import "testing"

func newTestMask(side int) *image.Alpha {
	return image.NewAlpha(image.Rect(0, 0, side, side))
}

func TestCacheStoreAndRetrieve(t *testing.T) {
	cache := NewCache(1024*1024)
	key := NewMaskKey('A', 25)

	_, found := cache.GetMask(key)
	if found { t.Fatal("empty cache claims to hold a mask") }

	mask := newTestMask(16)
	cache.PassMask(key, mask)
	stored, found := cache.GetMask(key)
	if !found { t.Fatal("mask not found after storing it") }
	if stored != mask { t.Fatal("retrieved a different mask than stored") }

	// distinct sizes and glyphs must not collide
	_, found = cache.GetMask(NewMaskKey('A', 26))
	if found { t.Fatal("key collision across sizes") }
	_, found = cache.GetMask(NewMaskKey('B', 25))
	if found { t.Fatal("key collision across glyphs") }
}

func TestCacheByteBounds(t *testing.T) {
	cache := NewCache(1000)

	// entries bigger than the whole cache are rejected outright
	big := newTestMask(64) // 4096 bytes of pixels
	bigKey := NewMaskKey('X', 64)
	cache.PassMask(bigKey, big)
	_, found := cache.GetMask(bigKey)
	if found { t.Fatal("oversized mask was stored") }
	if cache.ApproxByteSize() != 0 {
		t.Fatalf("empty cache reports %d bytes", cache.ApproxByteSize())
	}

	small := newTestMask(8) // 64 bytes of pixels
	smallKey := NewMaskKey('x', 8)
	cache.PassMask(smallKey, small)
	if _, found = cache.GetMask(smallKey); !found {
		t.Fatal("small mask was rejected")
	}
	if cache.ApproxByteSize() <= 0 {
		t.Fatal("cache reports no stored bytes")
	}
	if cache.PeakSize() < cache.ApproxByteSize() {
		t.Fatal("peak size below current size")
	}
}

func TestCacheEviction(t *testing.T) {
	// a cache that only fits a couple of masks must keep working as
	// more are offered, evicting or rejecting but never growing past
	// its bound
	entrySize := int(maskByteSize(newTestMask(16)))
	cache := NewCache(entrySize*2 + 1)
	for glyph := rune('a'); glyph <= 'z'; glyph++ {
		cache.PassMask(NewMaskKey(glyph, 16), newTestMask(16))
		if cache.ApproxByteSize() > entrySize*2 + 1 {
			t.Fatalf("cache grew past its bound: %d bytes", cache.ApproxByteSize())
		}
	}
}
