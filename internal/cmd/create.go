package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/stanpkg/stanpkg/internal/errors"
	"github.com/stanpkg/stanpkg/internal/output"
	"github.com/stanpkg/stanpkg/internal/skeleton"
)

var (
	createPath        string
	createOverwrite   bool
	createAutoConfig  bool
	createDryRun      bool
	createTitle       string
	createDescription string
	createPkgVersion  string
	createAuthor      string
	createMaintainer  string
	createLicense     string
	createOutput      string
)

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <package-name> [model.stan ...]",
		Short: "Create a new package skeleton",
		Long: `Create the skeleton of a package that embeds Stan models.

The skeleton is created at <path>/<package-name> and contains:
  DESCRIPTION                 Package metadata
  NAMESPACE                   Namespace declarations
  R/<package-name>-package.R  Package documentation
  Read-and-delete-me          Manual next steps
  inst/stan/                  Stan model sources
  src/                        Generated build artifacts

Each model file is copied into inst/stan unchanged. Its file name without
the .stan extension names the compiled model, e.g. stanmodels$bernoulli.

Author, maintainer and license default to the values in the config file.

Examples:
  # Create an empty skeleton in the current directory
  stanpkg create demo

  # Create a skeleton with two models under ./packages
  stanpkg create demo models/bernoulli.stan models/eight_schools.stan --path ./packages

  # Regenerate the skeleton files, keeping files you added
  stanpkg create demo --overwrite

  # Show the planned layout as JSON without writing anything
  stanpkg create demo --dry-run -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createPath, "path", "p", ".", "Directory to create the package in")
	cmd.Flags().BoolVarP(&createOverwrite, "overwrite", "f", false, "Replace the skeleton files of an existing package")
	cmd.Flags().BoolVar(&createAutoConfig, "auto-config", false, "Add configure scripts that prepare models at install time")
	cmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Validate and show the skeleton without writing it")
	cmd.Flags().StringVar(&createTitle, "title", "", "Package title")
	cmd.Flags().StringVar(&createDescription, "description", "", "Package description")
	cmd.Flags().StringVar(&createPkgVersion, "pkg-version", "", "Initial package version (default "+skeleton.DefaultVersion+")")
	cmd.Flags().StringVar(&createAuthor, "author", "", "Package author (env: STANPKG_AUTHOR)")
	cmd.Flags().StringVar(&createMaintainer, "maintainer", "", `Package maintainer as "Name <email>" (env: STANPKG_MAINTAINER)`)
	cmd.Flags().StringVar(&createLicense, "license", "", "Package license (env: STANPKG_LICENSE)")
	cmd.Flags().StringVarP(&createOutput, "output", "o", "text", "Output format: "+strings.Join(output.ValidFormats(), ", "))

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	format, ok := output.ParseOutputFormat(createOutput)
	if !ok {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", createOutput), "", "output",
			"Use one of: "+strings.Join(output.ValidFormats(), ", "))
	}

	cfg := GetConfig()

	opts := skeleton.Options{
		Name:       args[0],
		Path:       createPath,
		Models:     args[1:],
		Overwrite:  createOverwrite,
		AutoConfig: createAutoConfig || cfg.AutoConfig,
		DryRun:     createDryRun,
		Descriptor: skeleton.Overrides{
			Title:       createTitle,
			Description: createDescription,
			Version:     createPkgVersion,
			Author:      firstNonEmpty(createAuthor, cfg.Author),
			Maintainer:  firstNonEmpty(createMaintainer, cfg.Maintainer),
			License:     firstNonEmpty(createLicense, cfg.License),
		},
	}

	result, err := skeleton.Generate(opts)
	if err != nil {
		return err
	}

	if format != output.FormatText {
		out, err := output.Structured(format, result)
		if err != nil {
			return err
		}
		output.Print(out)
		return nil
	}

	absDir, err := filepath.Abs(result.Dir)
	if err != nil {
		absDir = result.Dir
	}

	location := output.StyleNoun.Render(absDir)
	switch {
	case result.DryRun:
		output.Println(fmt.Sprintf("%s package '%s' in %s\n",
			output.StatusStyle(output.StatusPlanned).Render("Would create"), result.Package, location))
	case result.Overwritten:
		output.Warn("replaced skeleton files of existing package", "path", result.Dir)
		output.Println(output.FormatCheckmark(fmt.Sprintf("%s package '%s' in %s\n",
			output.StatusStyle(output.StatusOverwritten).Render("Overwrote"), result.Package, location)))
	default:
		output.Println(output.FormatCheckmark(fmt.Sprintf("%s package '%s' in %s\n",
			output.StatusStyle(output.StatusCreated).Render("Created"), result.Package, location)))
	}

	output.Print(output.RenderFileTree(result.Package, treeEntries(result)))

	if !result.DryRun && output.IsTTY() {
		output.Println("")
		output.Println("Next: edit " + skeleton.ManifestFile + " and follow " + skeleton.NoteFile)
	}

	return nil
}

// treeEntries maps a generation result to file tree entries.
func treeEntries(result *skeleton.Result) map[string]string {
	entries := make(map[string]string, len(result.Files)+len(result.Dirs)+len(result.Models))
	for _, dir := range result.Dirs {
		entries[dir+"/"] = skeleton.Describe(dir)
	}
	for _, f := range result.Files {
		entries[f] = skeleton.Describe(f)
	}
	for _, m := range result.Models {
		entries[m.Dest] = skeleton.Describe(m.Dest)
	}
	return entries
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
