// mask holds the glyph rasterization side of glyphmask: a shared
// single-channel [Arena] that glyph coverage is stamped into with
// union semantics, and the [Stamper] implementations that produce the
// coverage of individual glyphs ([FontStamper] for real sfnt fonts,
// [BitmapStamper] as the always-available fallback).
//
// Stampers can't be used concurrently; give each worker its own and
// let them share an [Arena] and a glyph mask cache instead.
package mask
