package glyphmask

import "image"

import "github.com/0x0ndra/glyphmask/imgtools"

// Returns the average luminance of the given source region, in the
// [0, 255] range. The region is clipped to the image bounds before
// sampling; regions that end up empty yield zero (treated as darkest)
// instead of dividing by zero.
//
// Luminance uses the perceptual weighting documented on
// [imgtools.Luminance]().
func regionLuminance(img image.Image, region image.Rectangle) float64 {
	region = region.Intersect(img.Bounds())
	if region.Empty() { return 0 }

	// fast path for the most common in-memory format
	if rgba, isRGBA := img.(*image.RGBA); isRGBA {
		return rgbaRegionLuminance(rgba, region)
	}

	var sum float64
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += imgtools.Luminance(uint8(r >> 8), uint8(g >> 8), uint8(b >> 8))
		}
	}
	return sum/float64(region.Dx()*region.Dy())
}

func rgbaRegionLuminance(img *image.RGBA, region image.Rectangle) float64 {
	var sum float64
	for y := region.Min.Y; y < region.Max.Y; y++ {
		index := img.PixOffset(region.Min.X, y)
		for x := region.Min.X; x < region.Max.X; x++ {
			sum += imgtools.Luminance(img.Pix[index], img.Pix[index + 1], img.Pix[index + 2])
			index += 4
		}
	}
	return sum/float64(region.Dx()*region.Dy())
}
