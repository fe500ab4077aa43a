package main

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/0x0ndra/glyphmask"
)

// Named grid/size presets, matching the classic recommendations:
// small detailed characters, the regular default, and large poster
// characters.
var presets = map[string]struct{ width, size int }{
	"small":  {width: 120, size: 18},
	"medium": {width: 80, size: 25},
	"large":  {width: 40, size: 55},
}

func applyPreset(config *glyphmask.Config, name string) error {
	preset, known := presets[name]
	if !known {
		return fmt.Errorf("unknown preset %q (available: small, medium, large)", name)
	}
	config.GridWidth = preset.width
	config.GlyphSize = preset.size
	return nil
}

// fileConfig mirrors the tunable glyphmask.Config fields in YAML form.
// Pointer fields distinguish "absent" from zero values so a config
// file only overrides what it mentions.
type fileConfig struct {
	Preset         string   `yaml:"preset"`
	Chars          *string  `yaml:"chars"`
	Width          *int     `yaml:"width"`
	Size           *int     `yaml:"size"`
	Brightness     *float64 `yaml:"brightness"`
	Contrast       *float64 `yaml:"contrast"`
	Randomize      *bool    `yaml:"randomize"`
	Bold           *bool    `yaml:"bold"`
	SizeJitterMin  *float64 `yaml:"size_jitter_min"`
	SizeJitterMax  *float64 `yaml:"size_jitter_max"`
	PositionJitter *float64 `yaml:"position_jitter"`
	Background     *string  `yaml:"background"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var config fileConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &config, nil
}

func (self *fileConfig) applyTo(config *glyphmask.Config) error {
	if self.Preset != "" {
		err := applyPreset(config, self.Preset)
		if err != nil {
			return err
		}
	}
	if self.Chars != nil {
		config.Ramp = *self.Chars
	}
	if self.Width != nil {
		config.GridWidth = *self.Width
	}
	if self.Size != nil {
		config.GlyphSize = *self.Size
	}
	if self.Brightness != nil {
		config.Brightness = *self.Brightness
	}
	if self.Contrast != nil {
		config.Contrast = *self.Contrast
	}
	if self.Randomize != nil {
		config.Randomize = *self.Randomize
	}
	if self.Bold != nil {
		config.Bold = *self.Bold
	}
	if self.SizeJitterMin != nil {
		config.SizeJitterMin = *self.SizeJitterMin
	}
	if self.SizeJitterMax != nil {
		config.SizeJitterMax = *self.SizeJitterMax
	}
	if self.PositionJitter != nil {
		config.PositionJitter = *self.PositionJitter
	}
	if self.Background != nil {
		background, err := parseHexColor(*self.Background)
		if err != nil {
			return err
		}
		config.Background = background
	}
	return nil
}

// Parses "#rrggbb" or "rrggbb" into an opaque color.
func parseHexColor(value string) (color.RGBA, error) {
	if len(value) > 0 && value[0] == '#' {
		value = value[1:]
	}
	if len(value) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid background color %q (want rrggbb)", value)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(value, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid background color %q: %w", value, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
