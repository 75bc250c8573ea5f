package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stanpkg/stanpkg/internal/config"
	oerrors "github.com/stanpkg/stanpkg/internal/errors"
	"github.com/stanpkg/stanpkg/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the stanpkg configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Maintainer has the form "Name <email>"
  4. Author and license are non-blank single lines

The config path is resolved using precedence:
  --config flag > STANPKG_CONFIG env > ~/.stanpkg/config.yaml

Examples:
  # Validate default configuration
  stanpkg config vet

  # Validate custom config path
  stanpkg config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return oerrors.Wrap(oerrors.ErrSourceNotFound, "could not resolve config path")
	}
	configPath = config.ExpandTilde(configPath)

	output.Debug("validating config", "path", configPath)

	exists, err := config.ConfigFileExists(configPath)
	if err != nil || !exists {
		return oerrors.NewSourceNotFoundError(
			"configuration file not found",
			configPath,
			"Run 'stanpkg config init' to create default configuration.",
		)
	}

	cfg, err := config.NewLoader().Load(configPath)
	if err != nil {
		return oerrors.NewValidationError(err.Error(), configPath, "",
			"Fix the YAML syntax or run 'stanpkg config init --force'.")
	}

	if err := config.Validate(cfg); err != nil {
		return oerrors.NewValidationError(err.Error(), configPath, "",
			"Fix the listed fields or run 'stanpkg config init --force'.")
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + configPath))
	return nil
}
