package glyphmask

import "image"
import "image/color"

// Coverage above this value selects the photo; anything else selects
// the background. The vector rasterizer antialiases stroke edges, so
// thresholding (rather than alpha blending) is what keeps glyph edges
// crisp and makes bold coverage a strict superset of non-bold coverage.
const maskThreshold = 127

// Combines the glyph coverage mask with the enhanced photo and a flat
// background into the final image. Per-pixel selection, not blending:
// output[p] = enhanced[p] if coverage[p] > threshold, else background.
// Pure function of its inputs; both buffers must share dimensions and
// a zero origin.
func composite(coverage *image.Alpha, enhanced *image.RGBA, background color.RGBA) *image.RGBA {
	bounds := enhanced.Bounds()
	output := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		maskIndex := coverage.PixOffset(bounds.Min.X, y)
		pixIndex  := output.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if coverage.Pix[maskIndex] > maskThreshold {
				copy(output.Pix[pixIndex : pixIndex + 4], enhanced.Pix[pixIndex : pixIndex + 4])
			} else {
				output.Pix[pixIndex + 0] = background.R
				output.Pix[pixIndex + 1] = background.G
				output.Pix[pixIndex + 2] = background.B
				output.Pix[pixIndex + 3] = background.A
			}
			maskIndex += 1
			pixIndex  += 4
		}
	}
	return output
}
