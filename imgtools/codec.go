package imgtools

import "io"
import "fmt"
import "image"
import "image/png"
import "image/jpeg"
import "strings"

// Decodes a png or jpeg image from the given reader, returning the
// image and the detected format name.
func Decode(reader io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, "", fmt.Errorf("decoding source image: %w", err)
	}
	return img, format, nil
}

// Encodes an image to the given writer. Accepted formats are "png",
// "jpg" and "jpeg"; anything else is an error.
func Encode(writer io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(writer, img)
	case "jpg", "jpeg":
		return jpeg.Encode(writer, img, &jpeg.Options{Quality: 92})
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Maps a file extension (with or without the dot) to an [Encode]()
// format, defaulting to png for anything unknown.
func FormatForExtension(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return "jpeg"
	default:
		return "png"
	}
}
