package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stanpkg/stanpkg/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Manage the stanpkg user configuration that supplies manifest defaults.`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())

	return cmd
}

// GetConfigPath returns the config file path selected by --config,
// STANPKG_CONFIG or the default location, in that order.
func GetConfigPath() (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	return config.GetConfigFile()
}
