package imgtools

import "image"

import "golang.org/x/image/draw"

// Resizes the given image to the target dimensions using Catmull-Rom
// interpolation (the highest quality kernel x/image offers, on par
// with the usual Lanczos resamplers for photographic content). The
// result is always a fresh RGBA buffer anchored at the origin.
func Resize(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Converts any image to a fresh RGBA buffer anchored at the origin,
// without resampling.
func ToRGBA(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(dst, image.Point{}, src, bounds, draw.Src, nil)
	return dst
}
