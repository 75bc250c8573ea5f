package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stanpkg/stanpkg/internal/config"
	oerrors "github.com/stanpkg/stanpkg/internal/errors"
	"github.com/stanpkg/stanpkg/internal/output"
)

const configHeader = `# stanpkg configuration
#
# Values here are the defaults for new package manifests. Flags on
# 'stanpkg create' and STANPKG_* environment variables take precedence.
`

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a default stanpkg configuration file.

The file is written to the path given by --config, STANPKG_CONFIG or
~/.stanpkg/config.yaml, in that order. Edit the author and maintainer
before creating packages.

Examples:
  # Initialize configuration
  stanpkg config init

  # Overwrite existing configuration
  stanpkg config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine home directory: %w", err)
	}
	configPath = config.ExpandTilde(configPath)

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return oerrors.WriteFailure(configPath, err)
	}
	if exists && !configInitForce {
		return oerrors.NewAlreadyExistsError(
			"configuration already exists",
			configPath,
			"Use --force to overwrite existing configuration.",
		)
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.WriteFailure(filepath.Dir(configPath), err)
	}
	if err := os.WriteFile(configPath, buf.Bytes(), 0o600); err != nil {
		return oerrors.WriteFailure(configPath, err)
	}

	output.Debug("wrote config", "path", configPath, "force", configInitForce)
	output.Println(output.FormatCheckmark("Configuration initialized at " + output.StyleNoun.Render(configPath)))
	output.Println("")
	output.Println("Next: set author and maintainer, then validate with 'stanpkg config vet'")

	return nil
}
