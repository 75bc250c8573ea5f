package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stanpkg/stanpkg/internal/output"
	"github.com/stanpkg/stanpkg/internal/skeleton"
)

var addOverwrite bool

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <package-dir> <model.stan> [model.stan ...]",
		Short: "Add Stan models to an existing package",
		Long: `Copy Stan model files into inst/stan of an existing package skeleton.

Examples:
  # Add a model to the package in ./demo
  stanpkg add demo models/logistic.stan

  # Replace a model that is already present
  stanpkg add demo models/bernoulli.stan --overwrite`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAdd,
	}

	cmd.Flags().BoolVarP(&addOverwrite, "overwrite", "f", false, "Replace models that already exist")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	result, err := skeleton.AddModels(args[0], args[1:], addOverwrite)
	if err != nil {
		return err
	}

	for _, m := range result.Models {
		output.Println(output.FormatCheckmark(fmt.Sprintf("Added %s as stanmodels$%s",
			output.StyleNoun.Render(m.Dest), m.Name)))
	}

	return nil
}
