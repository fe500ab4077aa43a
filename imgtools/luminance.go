package imgtools

import "image"

// Perceptual luminance of an 8-bit RGB triple, in [0, 255].
//
// The whole module uses the classic ITU-R BT.601 weights
// (0.299, 0.587, 0.114), matching the usual "convert to grayscale"
// behavior of most imaging libraries. Flat channel averaging would
// also be correct, but it shifts glyph choices on saturated images,
// so the weighting is fixed here and documented once.
func Luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// Average perceptual luminance over a whole RGBA image, in [0, 255].
// Returns zero for images without pixels.
func MeanLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	if bounds.Empty() { return 0 }
	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		index := img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum += Luminance(img.Pix[index], img.Pix[index + 1], img.Pix[index + 2])
			index += 4
		}
	}
	return sum/float64(bounds.Dx()*bounds.Dy())
}
