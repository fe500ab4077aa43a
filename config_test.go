package glyphmask

import "errors"
import "testing"

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config invalid: %s", err.Error())
	}

	tests := []struct {
		mutate func(*Config)
		want error
	}{
		{func(c *Config) { c.Ramp = "" }, ErrEmptyRamp},
		{func(c *Config) { c.GridWidth = 0 }, ErrInvalidDimensions},
		{func(c *Config) { c.GridWidth = -3 }, ErrInvalidDimensions},
		{func(c *Config) { c.GlyphSize = 0 }, ErrInvalidDimensions},
		{func(c *Config) { c.SizeJitterMin = 0 }, ErrInvalidConfig},
		{func(c *Config) { c.SizeJitterMax = -1 }, ErrInvalidConfig},
		{func(c *Config) { c.SizeJitterMin = 2.0; c.SizeJitterMax = 1.0 }, ErrInvalidConfig},
		{func(c *Config) { c.PositionJitter = -0.1 }, ErrInvalidConfig},
		{func(c *Config) { c.Brightness = 0 }, ErrInvalidConfig},
		{func(c *Config) { c.Contrast = -1 }, ErrInvalidConfig},
		{func(c *Config) { c.BoldOffsets = nil }, ErrInvalidConfig},
	}

	for i, test := range tests {
		config := DefaultConfig()
		test.mutate(&config)
		err := config.Validate()
		if !errors.Is(err, test.want) {
			t.Fatalf("test #%d: expected %v, got %v", i, test.want, err)
		}
	}
}
