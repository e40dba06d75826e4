package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/blead/padfit/pkg/fit"
	"github.com/spf13/cobra"
)

var inlineOpts fitOptions

var inlineCmd = &cobra.Command{
	Use:   "inline [src]",
	Short: "Pad src to the aspect ratio and print it as a data URI",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, formats, err := inlineOpts.build(cmd)
		if err != nil {
			log.Fatalln(err)
		}
		if len(formats) != 1 {
			log.Fatalln("inline: exactly one --format is allowed")
		}
		config.WithSourcePath(filepath.Clean(args[0]))

		resizer, err := fit.NewResizer(config)
		if err != nil {
			log.Fatalln(err)
		}

		uri, err := resizer.DataURI(formats[0])
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println(uri)
	},
}

func init() {
	rootCmd.AddCommand(inlineCmd)
	inlineOpts.bind(inlineCmd)
}
