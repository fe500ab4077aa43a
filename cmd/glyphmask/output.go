package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/0x0ndra/glyphmask/imgtools"
)

// Writes the output image atomically: encode into a uniquely named
// temporary file next to the destination, then rename into place once
// the encode fully succeeded. A failed run never leaves a partial or
// corrupt file at the destination path.
func writeImage(img image.Image, outPath string) error {
	dir := filepath.Dir(outPath)
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmpPath := filepath.Join(dir, ".glyphmask-"+uuid.NewString()+".tmp")
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating temporary output file: %w", err)
	}

	format := imgtools.FormatForExtension(filepath.Ext(outPath))
	err = imgtools.Encode(tmpFile, img, format)
	if closeErr := tmpFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("encoding output image: %w", err)
	}

	err = os.Rename(tmpPath, outPath)
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}
