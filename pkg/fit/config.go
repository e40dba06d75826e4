package fit

import (
	"path/filepath"
	"strings"
)

// Defaults for a new Config.
const (
	DefaultTransparentLevel = 0
	DefaultCompressionLevel = 5
	DefaultQuality          = 80

	MaxCompressionLevel = 9
	MaxQuality          = 100
)

// Config is the configuration for the resizer.
// A Resizer keeps its own copy, so changes made after NewResizer only affect
// resizers created later.
type Config struct {
	AspectRatio      AspectRatio
	Background       Color
	TransparentLevel int
	CompressionLevel int
	Quality          int

	// SourcePath is read once by NewResizer.
	SourcePath string
	// OutputPath is the output prefix without extension.
	OutputPath string
}

// DefaultConfig generates a default configuration.
func DefaultConfig() *Config {
	return &Config{
		AspectRatio:      Square,
		Background:       White,
		TransparentLevel: DefaultTransparentLevel,
		CompressionLevel: DefaultCompressionLevel,
		Quality:          DefaultQuality,
	}
}

// WithAspectRatio sets the target width:height ratio.
// It is validated when the resizer is built.
func (c *Config) WithAspectRatio(width, height float64) *Config {
	c.AspectRatio = AspectRatio{Width: width, Height: height}
	return c
}

// WithBackground sets the padding colour.
func (c *Config) WithBackground(bg Color) *Config {
	c.Background = bg
	return c
}

// WithTransparentLevel sets the background transparency, clamped to [0,127].
// Only PNG and GIF output use it.
func (c *Config) WithTransparentLevel(level int) *Config {
	c.TransparentLevel = clamp(level, 0, MaxTransparentLevel)
	return c
}

// WithCompressionLevel sets the PNG compression level, clamped to [0,9].
func (c *Config) WithCompressionLevel(level int) *Config {
	c.CompressionLevel = clamp(level, 0, MaxCompressionLevel)
	return c
}

// WithQuality sets the JPEG quality, clamped to [0,100].
func (c *Config) WithQuality(quality int) *Config {
	c.Quality = clamp(quality, 0, MaxQuality)
	return c
}

// WithSourcePath sets the source image path.
func (c *Config) WithSourcePath(path string) *Config {
	c.SourcePath = strings.TrimSpace(path)
	return c
}

// WithOutputPath sets the output prefix. Any extension is dropped since each
// format appends its own.
func (c *Config) WithOutputPath(path string) *Config {
	path = strings.TrimSpace(path)
	if path != "" {
		path = strings.TrimSuffix(filepath.Clean(path), filepath.Ext(path))
	}
	c.OutputPath = path
	return c
}

// normalize clamps fields that may have been set directly on the struct.
func (c Config) normalize() Config {
	c.TransparentLevel = clamp(c.TransparentLevel, 0, MaxTransparentLevel)
	c.CompressionLevel = clamp(c.CompressionLevel, 0, MaxCompressionLevel)
	c.Quality = clamp(c.Quality, 0, MaxQuality)
	return c
}
