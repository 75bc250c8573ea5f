package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stanpkg/stanpkg/internal/output"
	"github.com/stanpkg/stanpkg/internal/skeleton"
)

// NewModelsCmd creates the models command.
func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models <package-dir>",
		Short: "List the Stan models of a package",
		Long: `List the Stan model files in inst/stan of a package skeleton and the
compiled model each one becomes.

Examples:
  stanpkg models demo`,
		Args: cobra.ExactArgs(1),
		RunE: runModels,
	}
}

func runModels(cmd *cobra.Command, args []string) error {
	models, err := skeleton.ListModels(args[0])
	if err != nil {
		return err
	}

	tbl := output.NewTable("MODEL", "FILE", "COMPILED AS")
	for _, m := range models {
		tbl.Row(m.Name, m.Dest, fmt.Sprintf("stanmodels$%s", m.Name))
	}

	if tbl.Len() == 0 {
		output.Println("No models in " + skeleton.ModelDir)
		return nil
	}
	output.Println(tbl.String())

	return nil
}
