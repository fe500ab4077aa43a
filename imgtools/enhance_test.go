package imgtools

import "image"
import "image/color"
import "bytes"
import "testing"

func uniform(width, height int, value color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, value)
		}
	}
	return img
}

func TestEnhanceIdentity(t *testing.T) {
	img := uniform(4, 4, color.RGBA{13, 117, 230, 255})
	original := append([]byte(nil), img.Pix...)
	Enhance(img, 1.0, 1.0)
	if !bytes.Equal(img.Pix, original) {
		t.Fatal("identity multipliers changed the image")
	}
}

func TestEnhanceBrightness(t *testing.T) {
	tests := []struct {
		in uint8
		factor float64
		out uint8
	}{
		{100, 2.0, 200}, {100, 0.5, 50}, {200, 2.0, 255}, // clamped
		{0, 3.0, 0}, {255, 1.5, 255},
	}
	for i, test := range tests {
		img := uniform(2, 2, color.RGBA{test.in, test.in, test.in, 255})
		Enhance(img, test.factor, 1.0)
		out := img.RGBAAt(0, 0)
		if out.R != test.out {
			str := "test #%d: channel %d at brightness %.2f expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.factor, test.out, out.R)
		}
		if out.A != 255 {
			t.Fatalf("test #%d: alpha was modified", i)
		}
	}
}

func TestEnhanceContrast(t *testing.T) {
	// two-tone image: contrast > 1 pushes the tones apart around the
	// image mean, clamped at the channel bounds
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{100, 100, 100, 255})
	img.SetRGBA(1, 0, color.RGBA{200, 200, 200, 255})
	Enhance(img, 1.0, 2.0)

	dark := img.RGBAAt(0, 0).R
	bright := img.RGBAAt(1, 0).R
	if dark >= 100 {
		t.Fatalf("dark tone expected below 100, got %d", dark)
	}
	if bright <= 200 {
		t.Fatalf("bright tone expected above 200, got %d", bright)
	}

	// contrast 1.0 with any mean is a no-op
	img2 := uniform(3, 3, color.RGBA{77, 77, 77, 255})
	Enhance(img2, 1.0, 1.0)
	if img2.RGBAAt(1, 1).R != 77 {
		t.Fatal("neutral contrast changed a uniform image")
	}
}
