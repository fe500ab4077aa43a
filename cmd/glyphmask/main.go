// The glyphmask command turns a photo into ASCII photo-mask art: the
// photo shines through glyph-shaped cutouts over a flat background.
//
// Basic usage:
//
//	glyphmask photo.jpg
//	glyphmask -o out.png -w 120 -s 18 photo.jpg
//	glyphmask -preset large -no-random photo.jpg
//
// A .env file (or the environment) may provide GLYPHMASK_FONT and
// GLYPHMASK_LOG_FILE as defaults for the corresponding flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/0x0ndra/glyphmask"
	"github.com/0x0ndra/glyphmask/font"
	"github.com/0x0ndra/glyphmask/imgtools"
	"github.com/0x0ndra/glyphmask/internal/logging"
)

const progressEveryRows = 10

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load() // a missing .env file is fine

	var (
		outPath    = flag.String("o", "", "output image path (default: <input>_ascii_art.png)")
		width      = flag.Int("w", 80, "number of characters across the width")
		size       = flag.Int("s", 25, "glyph size in pixels")
		brightness = flag.Float64("b", 1.8, "brightness multiplier")
		contrast   = flag.Float64("c", 1.3, "contrast multiplier")
		noRandom   = flag.Bool("no-random", false, "disable randomization for a perfect grid")
		noBold     = flag.Bool("no-bold", false, "disable the bold effect on glyphs")
		chars      = flag.String("chars", "", "custom glyph ramp, darkest to lightest")
		presetName = flag.String("preset", "", "named preset: small, medium or large")
		configPath = flag.String("config", "", "YAML config file")
		seed       = flag.Uint64("seed", 0, "randomization seed (default: time based)")
		workers    = flag.Int("workers", 0, "worker goroutines (0 = all CPUs)")
		fontPath   = flag.String("font", os.Getenv("GLYPHMASK_FONT"), "font file (.ttf/.otf/.ttc) or directory")
		logFile    = flag.String("log-file", os.Getenv("GLYPHMASK_LOG_FILE"), "also log to this rotating file")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return errors.New("exactly one input image path is required")
	}
	inputPath := flag.Arg(0)

	logger, flush := logging.New(*verbose, *logFile)
	defer flush()

	// resolve configuration: defaults, then preset, then config file,
	// then explicitly passed flags
	config := glyphmask.DefaultConfig()
	if *presetName != "" {
		if err := applyPreset(&config, *presetName); err != nil {
			return err
		}
	}
	if *configPath != "" {
		fileConfig, err := loadFileConfig(*configPath)
		if err != nil {
			return err
		}
		if err := fileConfig.applyTo(&config); err != nil {
			return err
		}
	}
	passed := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { passed[f.Name] = true })
	if passed["w"] {
		config.GridWidth = *width
	}
	if passed["s"] {
		config.GlyphSize = *size
	}
	if passed["b"] {
		config.Brightness = *brightness
	}
	if passed["c"] {
		config.Contrast = *contrast
	}
	if *noRandom {
		config.Randomize = false
	}
	if *noBold {
		config.Bold = false
	}
	if *chars != "" {
		config.Ramp = *chars
	}

	gen := glyphmask.NewGenerator(config)
	gen.SetWorkers(*workers)
	if passed["seed"] {
		gen.SetSeed(*seed)
	} else {
		gen.SetSeed(uint64(time.Now().UnixNano()))
	}

	// font setup; generation proceeds with built-in glyphs when no
	// usable font can be found
	sfntFont, fontName, err := resolveFont(*fontPath)
	switch {
	case err == nil:
		logger.Debug("font loaded", zap.String("font", fontName))
		gen.SetFont(sfntFont)
	case errors.Is(err, font.ErrNoFontFound):
		logger.Warn("no usable font found, falling back to built-in bitmap glyphs")
	default:
		return err
	}

	// decode the source image
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input image: %w", err)
	}
	src, format, err := imgtools.Decode(inputFile)
	closeErr := inputFile.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	srcBounds := src.Bounds()
	plan, err := glyphmask.PlanGrid(srcBounds.Dx(), srcBounds.Dy(), config.GridWidth, config.GlyphSize)
	if err != nil {
		return err
	}
	logger.Info("creating ASCII photo mask",
		zap.String("input", inputPath),
		zap.String("format", format),
		zap.Int("columns", plan.Columns),
		zap.Int("rows", plan.Rows),
		zap.Int("outputWidth", plan.OutputWidth),
		zap.Int("outputHeight", plan.OutputHeight),
	)

	gen.SetProgressFunc(func(rowsDone, totalRows int) {
		if rowsDone%progressEveryRows == 0 || rowsDone == totalRows {
			logger.Info("progress", zap.Int("rowsDone", rowsDone), zap.Int("totalRows", totalRows))
		}
	})

	started := time.Now()
	output, err := gen.Generate(src)
	if err != nil {
		return err
	}
	logger.Debug("generation finished", zap.Duration("elapsed", time.Since(started)))

	destination := *outPath
	if destination == "" {
		destination = defaultOutputPath(inputPath)
	}
	if err := writeImage(output, destination); err != nil {
		return err
	}

	color.Green("✓ ASCII photo art saved to: %s", destination)
	fmt.Printf("  %dx%d characters, %dx%d pixels\n",
		plan.Columns, plan.Rows, plan.OutputWidth, plan.OutputHeight)
	return nil
}

// Loads a font from an explicit path (file or directory), or probes
// the platform's usual locations when the path is empty.
func resolveFont(path string) (*glyphmask.Font, string, error) {
	if path == "" {
		return font.FirstAvailable()
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("font path: %w", err)
	}
	if info.IsDir() {
		return font.FirstFromDir(path)
	}
	if strings.HasSuffix(path, ".ttc") {
		sfntFont, err := font.ParseCollectionFromPath(path, 0)
		return sfntFont, filepath.Base(path), err
	}
	sfntFont, err := font.ParseFromPath(path)
	if err != nil {
		return nil, "", err
	}
	return sfntFont, filepath.Base(path), nil
}

func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)
	return stem + "_ascii_art.png"
}
