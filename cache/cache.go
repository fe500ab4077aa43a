package cache

import "image"
import "sync"
import "sync/atomic"

// Cache keys identify a rasterized mask by glyph and pixel size.
type MaskKey [2]uint64

// Builds the [MaskKey] for the given glyph at the given pixel size.
func NewMaskKey(glyph rune, sizePx int) MaskKey {
	return MaskKey{uint64(uint32(glyph)), uint64(sizePx)}
}

// A glyph mask cache. It is concurrent-safe (though not optimized or
// expected to be used under heavily concurrent scenarios), it has
// memory bounds and uses random sampling for evicting entries.
type Cache struct {
	cachedMasks map[MaskKey]*cachedMaskEntry
	spaceBytesLeft atomic.Uint32
	lowestBytesLeft atomic.Uint32
	byteSizeLimit uint32
	mutex sync.RWMutex
}

// Creates a new cache bounded by the given size, in bytes. Negative
// values will panic.
//
// Values below 32*1024 (32KiB) are not recommended; a typical run at
// default settings fits comfortably within a few MiBs.
func NewCache(maxByteSize int) *Cache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	cache := &Cache{
		cachedMasks: make(map[MaskKey]*cachedMaskEntry, 128),
		byteSizeLimit: uint32(maxByteSize),
	}
	cache.spaceBytesLeft.Store(uint32(maxByteSize))
	cache.lowestBytesLeft.Store(uint32(maxByteSize))
	return cache
}

// Gets the mask associated to the given key. Returned masks must be
// treated as read-only.
func (self *Cache) GetMask(key MaskKey) (*image.Alpha, bool) {
	self.mutex.RLock()
	entry, found := self.cachedMasks[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.IncreaseAccessCount()
	return entry.Mask, true
}

// Stores the given mask with the given key. The mask must not be
// modified after being passed to the cache.
func (self *Cache) PassMask(key MaskKey, mask *image.Alpha) {
	const MaxMakeRoomAttempts = 2

	// see if we have enough space to add the mask, or try
	// to make some room otherwise
	maskEntry, instant := newCachedMaskEntry(mask)
	if maskEntry.ByteSize > self.byteSizeLimit { return }
	spaceBytesLeft := self.spaceBytesLeft.Load()
	freedSpace := uint32(0)
	if maskEntry.ByteSize > spaceBytesLeft {
		hotness := maskEntry.Hotness(instant)
		missingSpace := maskEntry.ByteSize - spaceBytesLeft
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			freedSpace += self.removeColdEntry(hotness, instant)
			if freedSpace >= missingSpace { goto roomMade }
		}

		// we didn't make enough room for the new entry. desist.
		if freedSpace != 0 { self.spaceBytesLeft.Add(freedSpace) }
		return
	}

roomMade:
	// add the mask to the cache
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if freedSpace != 0 { self.spaceBytesLeft.Add(freedSpace) }
	_, maskAlreadyExists := self.cachedMasks[key]
	if maskAlreadyExists { return }
	if self.spaceBytesLeft.Load() < maskEntry.ByteSize { return }
	newLeft := self.spaceBytesLeft.Add(^uint32(maskEntry.ByteSize - 1))
	if newLeft < self.lowestBytesLeft.Load() {
		self.lowestBytesLeft.Store(newLeft)
	}
	self.cachedMasks[key] = maskEntry
}

// Attempts to remove the entry with the lowest eviction cost from a
// small pool of samples. May not remove anything in some cases.
//
// The returned value is the freed space, which must be manually
// added back to spaceBytesLeft by the caller.
func (self *Cache) removeColdEntry(hotness uint32, instant uint32) uint32 {
	const SampleSize = 10

	self.mutex.RLock()
	var selectedKey MaskKey
	lowestHotness := ^uint32(0)
	samplesTaken := 0
	for key, entry := range self.cachedMasks { // map order is pseudo-random
		currHotness := entry.Hotness(instant)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	// delete selected entry, if any
	freedSpace := uint32(0)
	if lowestHotness < hotness {
		self.mutex.Lock()
		entry, stillExists := self.cachedMasks[selectedKey]
		if stillExists {
			delete(self.cachedMasks, selectedKey)
			freedSpace = entry.ByteSize
		}
		self.mutex.Unlock()
	}
	return freedSpace
}

// Returns an approximation of the number of bytes taken by the glyph
// masks currently stored in the cache.
func (self *Cache) ApproxByteSize() int {
	return int(self.byteSizeLimit - self.spaceBytesLeft.Load())
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life. Useful to set
// the capacity to a reasonable value for your workload.
func (self *Cache) PeakSize() int {
	return int(self.byteSizeLimit - self.lowestBytesLeft.Load())
}
