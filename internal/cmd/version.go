package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stanpkg/stanpkg/internal/output"
	"github.com/stanpkg/stanpkg/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show stanpkg version information.

Displays:
  - stanpkg version, commit, and build date
  - Go and CUE SDK versions`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Println(version.Get().String())
	return nil
}
