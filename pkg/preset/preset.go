package preset

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/blead/padfit/pkg/fit"
)

// Preset is a reusable set of output options read from a TOML file.
// Pointer fields distinguish "unset" from zero so unset keys keep defaults.
type Preset struct {
	Ratio        string   `toml:"ratio"`
	Background   string   `toml:"background"`
	Transparency *int     `toml:"transparency"`
	Compression  *int     `toml:"compression"`
	Quality      *int     `toml:"quality"`
	Formats      []string `toml:"formats"`
	Output       string   `toml:"output"`
}

// Load reads a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset.Load: read error, path=%s, %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset.Load: path=%s, %w", path, err)
	}
	return p, nil
}

// Parse decodes TOML preset data. Unknown keys are rejected.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, fmt.Errorf("preset.Parse: %v: %w", err, fit.ErrInvalidArgument)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("preset.Parse: unknown keys=%s, %w", strings.Join(keys, ","), fit.ErrInvalidArgument)
	}
	return &p, nil
}

// Apply copies the preset's set fields onto config.
func (p *Preset) Apply(config *fit.Config) error {
	if p.Ratio != "" {
		ar, err := fit.ParseAspectRatio(p.Ratio)
		if err != nil {
			return err
		}
		config.WithAspectRatio(ar.Width, ar.Height)
	}
	if p.Background != "" {
		bg, err := fit.ParseColor(p.Background)
		if err != nil {
			return err
		}
		config.WithBackground(bg)
	}
	if p.Transparency != nil {
		config.WithTransparentLevel(*p.Transparency)
	}
	if p.Compression != nil {
		config.WithCompressionLevel(*p.Compression)
	}
	if p.Quality != nil {
		config.WithQuality(*p.Quality)
	}
	if p.Output != "" {
		config.WithOutputPath(p.Output)
	}
	return nil
}

// Config builds a configuration from the defaults with the preset applied.
func (p *Preset) Config() (*fit.Config, error) {
	config := fit.DefaultConfig()
	if err := p.Apply(config); err != nil {
		return nil, err
	}
	return config, nil
}

// OutputFormats resolves the preset's format names. Empty means PNG only.
func (p *Preset) OutputFormats() ([]fit.Format, error) {
	if len(p.Formats) == 0 {
		return []fit.Format{fit.PNG}, nil
	}
	formats := make([]fit.Format, 0, len(p.Formats))
	for _, name := range p.Formats {
		f, err := fit.FormatByName(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}
