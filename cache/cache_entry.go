package cache

import "image"
import "time"
import "sync/atomic"

var cacheEpoch = time.Now()

// A cached mask with additional information to estimate how
// much the entry is being used.
type cachedMaskEntry struct {
	Mask *image.Alpha // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // see cacheEntryInstant(). Read-only.
	accessCount atomic.Uint32 // number of times the entry has been accessed
}

func newCachedMaskEntry(mask *image.Alpha) (*cachedMaskEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedMaskEntry{
		Mask: mask,
		ByteSize: maskByteSize(mask),
		CreationInstant: instant,
	}, instant
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedMaskEntry) IncreaseAccessCount() {
	self.accessCount.Add(1)
}

// A measure of "bytes accessed per time". Coldest entries (smallest
// values) are candidates for eviction. Concurrent-safe.
func (self *cachedMaskEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*self.accessCount.Load()
	elapsed := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

// A time instant related to the process monotonic clock, downscaled
// to coarse ticks of roughly an eighth of a second.
func cacheEntryInstant() uint32 {
	return uint32(time.Since(cacheEpoch).Nanoseconds() >> 27)
}

const maskEntryFixedCost = 56 // approximate struct and header overhead

func maskByteSize(mask *image.Alpha) uint32 {
	if mask == nil { return maskEntryFixedCost }
	return uint32(len(mask.Pix)) + maskEntryFixedCost
}
