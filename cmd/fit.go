package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/blead/padfit/pkg/concurrency"
	"github.com/blead/padfit/pkg/fit"
	"github.com/spf13/cobra"
)

var fitOpts fitOptions

var fitCmd = &cobra.Command{
	Use:   "fit [src] [dest prefix]",
	Short: "Pad src to the aspect ratio and save it at dest prefix (default \"[src dir]/Resized Images/[src name]\")",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		config, formats, err := fitOpts.build(cmd)
		if err != nil {
			log.Fatalln(err)
		}
		config.WithSourcePath(filepath.Clean(args[0]))
		if len(args) == 2 {
			config.WithOutputPath(args[1])
		}

		resizer, err := fit.NewResizer(config)
		if err != nil {
			log.Fatalln(err)
		}

		var items []*concurrency.Item[fit.Format, string]
		for _, f := range formats {
			items = append(items, &concurrency.Item[fit.Format, string]{Data: f})
		}
		err = concurrency.Execute(
			func(i *concurrency.Item[fit.Format, string]) (string, error) {
				return resizer.Save(i.Data, "")
			},
			items,
			len(items),
		)
		for _, i := range items {
			if i.Err == nil {
				fmt.Println(i.Output)
			}
		}
		if err != nil {
			log.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)
	fitOpts.bind(fitCmd)
}
