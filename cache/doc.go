// cache provides a concurrent-safe, memory-bounded cache for
// rasterized glyph coverage masks.
//
// A character grid stamps the same (glyph, size) pairs over and over,
// so caching their masks removes almost all rasterization work after
// the first few rows. The cache is shared between all the workers of
// a run; each worker's stamper queries it before rasterizing.
package cache
