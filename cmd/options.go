package cmd

import (
	"github.com/blead/padfit/pkg/fit"
	"github.com/blead/padfit/pkg/preset"
	"github.com/spf13/cobra"
)

// fitOptions holds the flags shared by commands that build a fit.Config.
type fitOptions struct {
	ratio        string
	background   string
	transparency int
	compression  int
	quality      int
	formats      []string
	preset       string
}

func (o *fitOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.ratio, "ratio", "r", "", "Target aspect ratio as W:H (default 1:1)")
	cmd.Flags().StringVarP(&o.background, "background", "b", "", "Background colour as #rrggbb or r,g,b (default #ffffff)")
	cmd.Flags().IntVarP(&o.transparency, "transparency", "t", fit.DefaultTransparentLevel, "Background transparency [0-127] for png and gif")
	cmd.Flags().IntVarP(&o.compression, "compression", "c", fit.DefaultCompressionLevel, "PNG compression level [0-9]")
	cmd.Flags().IntVarP(&o.quality, "quality", "q", fit.DefaultQuality, "JPEG quality [0-100]")
	cmd.Flags().StringSliceVarP(&o.formats, "format", "f", nil, "Output formats: png, jpg, gif (default png)")
	cmd.Flags().StringVarP(&o.preset, "preset", "p", "", "TOML preset file, flags given explicitly override it")
}

// build resolves the preset, then the explicitly set flags, into a config and
// output formats.
func (o *fitOptions) build(cmd *cobra.Command) (*fit.Config, []fit.Format, error) {
	config := fit.DefaultConfig()
	var formats []fit.Format

	if o.preset != "" {
		p, err := preset.Load(o.preset)
		if err != nil {
			return nil, nil, err
		}
		if err := p.Apply(config); err != nil {
			return nil, nil, err
		}
		formats, err = p.OutputFormats()
		if err != nil {
			return nil, nil, err
		}
	}

	flags := cmd.Flags()
	if o.ratio != "" {
		ar, err := fit.ParseAspectRatio(o.ratio)
		if err != nil {
			return nil, nil, err
		}
		config.WithAspectRatio(ar.Width, ar.Height)
	}
	if o.background != "" {
		bg, err := fit.ParseColor(o.background)
		if err != nil {
			return nil, nil, err
		}
		config.WithBackground(bg)
	}
	if flags.Changed("transparency") {
		config.WithTransparentLevel(o.transparency)
	}
	if flags.Changed("compression") {
		config.WithCompressionLevel(o.compression)
	}
	if flags.Changed("quality") {
		config.WithQuality(o.quality)
	}

	if len(o.formats) > 0 {
		formats = formats[:0]
		for _, name := range o.formats {
			f, err := fit.FormatByName(name)
			if err != nil {
				return nil, nil, err
			}
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		formats = []fit.Format{fit.PNG}
	}
	return config, formats, nil
}
