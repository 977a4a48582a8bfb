package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build information, populated at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	BuiltAt = "unknown"
)

// Command returns the version subcommand.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tdate %s, commit %s, built at %s\n", Version, Commit, BuiltAt)
			fmt.Println()
			fmt.Println("93 93/93")
		},
	}
}
