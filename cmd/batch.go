package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/blead/padfit/pkg/batch"
	"github.com/spf13/cobra"
)

var batchOpts fitOptions
var batchConcurrency int

var batchCmd = &cobra.Command{
	Use:   "batch [src] [dest]",
	Short: "Pad every image under src into dest, mirroring the directory tree",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		config, formats, err := batchOpts.build(cmd)
		if err != nil {
			log.Fatalln(err)
		}

		batcher, err := batch.NewBatcher(&batch.BatcherConfig{
			SrcPath:     filepath.Clean(args[0]),
			DestPath:    filepath.Clean(args[1]),
			Formats:     formats,
			Fit:         config,
			Concurrency: batchConcurrency,
		})
		if err != nil {
			log.Fatalln(err)
		}

		written, err := batcher.Run()
		for _, p := range written {
			fmt.Println(p)
		}
		if err != nil {
			log.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchOpts.bind(batchCmd)
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "n", 5, "Maximum number of concurrent image processing")
}
