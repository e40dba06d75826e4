package cmd

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	"github.com/Jeffail/gabs/v2"
	"github.com/blead/padfit/pkg/fit"
	"github.com/spf13/cobra"
)

var inspectOpts fitOptions

var inspectCmd = &cobra.Command{
	Use:   "inspect [src]",
	Short: "Print the source size and the padded canvas as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, _, err := inspectOpts.build(cmd)
		if err != nil {
			log.Fatalln(err)
		}
		config.WithSourcePath(filepath.Clean(args[0]))

		resizer, err := fit.NewResizer(config)
		if err != nil {
			log.Fatalln(err)
		}

		out, err := describe(resizer)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println(out.StringIndent("", "  "))
	},
}

func describe(resizer *fit.Resizer) (*gabs.Container, error) {
	src := resizer.Source()
	config := resizer.Config()
	width, height, err := resizer.CanvasSize()
	if err != nil {
		return nil, err
	}
	offset := fit.CenterOffset(image.Pt(width, height), image.Pt(src.Width(), src.Height()))

	out := gabs.New()
	for path, value := range map[string]any{
		"source.path":   src.Path,
		"source.mime":   src.MIME,
		"source.width":  src.Width(),
		"source.height": src.Height(),
		"ratio":         config.AspectRatio.String(),
		"canvas.width":  width,
		"canvas.height": height,
		"offset.x":      offset.X,
		"offset.y":      offset.Y,
		"background":    config.Background.String(),
	} {
		if _, err := out.SetP(value, path); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectOpts.bind(inspectCmd)
}
