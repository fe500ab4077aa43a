// glyphmask is a package for turning photographs into stylized raster
// images where the photo shines through character-shaped cutouts: each
// cell of a regular grid gets an ASCII glyph picked from its brightness,
// the glyphs are rasterized into a single coverage mask, and the mask
// decides, pixel by pixel, whether you see the (enhanced) photo or a
// flat background color.
//
// Common usage only requires a [Config] and a [Generator]:
//   gen := glyphmask.NewGenerator(glyphmask.DefaultConfig())
//   sfntFont, _, err := font.FirstAvailable()
//   if err == nil { gen.SetFont(sfntFont) } // fallback glyphs otherwise
//   output, err := gen.Generate(photo)
//   if err != nil { ... }
//
// There are a lot of parameters you can configure, but the critical
// ones are the glyph ramp, the grid width, the glyph pixel size and
// the randomization settings. Take a good look at those and have fun
// exploring the rest!
package glyphmask
