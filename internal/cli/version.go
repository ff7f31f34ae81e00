package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version, overridable at build time via
// -ldflags "-X learnhub/internal/cli.Version=...".
var Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the learnhub version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("learnhub %s\n", Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
