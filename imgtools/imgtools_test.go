package imgtools

import "math"
import "image"
import "image/color"
import "bytes"
import "testing"

func TestLuminanceWeights(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		out float64
	}{
		{0, 0, 0, 0}, {255, 255, 255, 255}, {128, 128, 128, 128},
		{255, 0, 0, 76.245}, {0, 255, 0, 149.685}, {0, 0, 255, 29.07},
	}
	for i, test := range tests {
		out := Luminance(test.r, test.g, test.b)
		if math.Abs(out - test.out) > 0.001 {
			str := "test #%d: rgb(%d, %d, %d) expected %f, but got %f"
			t.Fatalf(str, i, test.r, test.g, test.b, test.out, out)
		}
	}
}

func TestMeanLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{255, 255, 255, 255})
	if out := MeanLuminance(img); math.Abs(out - 127.5) > 0.001 {
		t.Fatalf("expected mean 127.5, got %f", out)
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if out := MeanLuminance(empty); out != 0 {
		t.Fatalf("empty image expected mean 0, got %f", out)
	}
}

func TestResize(t *testing.T) {
	src := uniform(10, 6, color.RGBA{90, 90, 90, 255})
	dst := Resize(src, 25, 15)
	if dst.Bounds() != image.Rect(0, 0, 25, 15) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}
	// resampling a uniform image must stay uniform
	center := dst.RGBAAt(12, 7)
	if center.R != 90 || center.G != 90 || center.B != 90 {
		t.Fatalf("uniform image changed under resampling: %v", center)
	}
}

func TestToRGBAAnchorsAtOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 9, 9))
	dst := ToRGBA(src)
	if dst.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}
}

func TestCodecRoundTrip(t *testing.T) {
	src := uniform(6, 4, color.RGBA{12, 34, 56, 255})
	var buffer bytes.Buffer
	if err := Encode(&buffer, src, "png"); err != nil { t.Fatal(err) }

	decoded, format, err := Decode(&buffer)
	if err != nil { t.Fatal(err) }
	if format != "png" {
		t.Fatalf("expected png, detected %q", format)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed through the codec: %v", decoded.Bounds())
	}

	if err := Encode(&buffer, src, "bmp"); err == nil {
		t.Fatal("unsupported format accepted")
	}
}

func TestFormatForExtension(t *testing.T) {
	tests := []struct{ ext, out string }{
		{".png", "png"}, {".jpg", "jpeg"}, {".JPEG", "jpeg"},
		{"jpg", "jpeg"}, {".webp", "png"}, {"", "png"},
	}
	for i, test := range tests {
		if out := FormatForExtension(test.ext); out != test.out {
			t.Fatalf("test #%d: ext %q expected %q, got %q", i, test.ext, test.out, out)
		}
	}
}
