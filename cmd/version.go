package cmd

import (
	"fmt"
	"strings"

	"github.com/blead/padfit/pkg/fit"
	"github.com/spf13/cobra"
)

// set with -ldflags "-X github.com/blead/padfit/cmd.appVersion=..."
var appVersion = "development"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number and supported output formats",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, len(fit.Formats))
		for i, f := range fit.Formats {
			names[i] = f.Name
		}
		fmt.Printf("padfit %s (formats: %s)\n", appVersion, strings.Join(names, ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
