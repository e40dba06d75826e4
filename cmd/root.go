package cmd

import (
	"log"
	"os"

	"github.com/hashicorp/logutils"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "padfit",
	Short: "Pad images out to an aspect ratio without cropping or stretching",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutput(&logutils.LevelFilter{
				Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
				MinLevel: logutils.LogLevel("DEBUG"),
				Writer:   os.Stderr,
			})
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Print debug logs")
}
