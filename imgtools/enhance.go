package imgtools

import "image"

// Enhances an image in place: brightness first, then contrast, both
// expressed as multipliers where 1.0 means no change. Contrast pivots
// around the mean luminance of the (already brightened) image, so a
// multiplier above 1.0 pushes each channel away from the image mean
// and below 1.0 pulls it towards it. Alpha is left untouched.
//
// Returns the same image to allow chaining after [Resize]().
func Enhance(img *image.RGBA, brightness, contrast float64) *image.RGBA {
	if brightness != 1.0 {
		scaleChannels(img, brightness)
	}
	if contrast != 1.0 {
		mean := MeanLuminance(img)
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			index := img.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				for channel := 0; channel < 3; channel++ {
					value := (float64(img.Pix[index + channel]) - mean)*contrast + mean
					img.Pix[index + channel] = clampChannel(value)
				}
				index += 4
			}
		}
	}
	return img
}

func scaleChannels(img *image.RGBA, factor float64) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		index := img.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for channel := 0; channel < 3; channel++ {
				img.Pix[index + channel] = clampChannel(float64(img.Pix[index + channel])*factor)
			}
			index += 4
		}
	}
}

func clampChannel(value float64) uint8 {
	if value <= 0 { return 0 }
	if value >= 255 { return 255 }
	return uint8(value + 0.5)
}
