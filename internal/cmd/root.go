// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stanpkg/stanpkg/internal/config"
	oerrors "github.com/stanpkg/stanpkg/internal/errors"
	"github.com/stanpkg/stanpkg/internal/output"
	"github.com/stanpkg/stanpkg/internal/version"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	loadedConfig *config.Config
)

// NewRootCmd creates the root command for the stanpkg CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stanpkg",
		Short: "Scaffold packages that embed Stan models",
		Long: `stanpkg creates the skeleton of a package that embeds Stan model files.

It writes the package manifest, namespace file, package documentation
source and an onboarding note, and copies model files into inst/stan where
the package build compiles them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: STANPKG_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewAddCmd())
	rootCmd.AddCommand(NewModelsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, loadErr := config.NewLoader().Load(configFlag)
	if loadErr != nil {
		cfg = &config.Config{}
	}

	logCfg := output.LogConfig{Verbose: verboseFlag}

	// Timestamps: flag (if explicitly set) > config > default
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	info := version.Get()
	output.Debug("stanpkg started", "version", info.Version, "config", configFlag)

	// The config commands report invalid configs themselves.
	if isConfigCommand(cmd) {
		output.Debug("config not validated", "command", cmd.Name(), "loadError", loadErr)
		loadedConfig = cfg
		return nil
	}

	err := loadErr
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		location, _ := GetConfigPath()
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: location,
			Hint:     "Fix the config file or run 'stanpkg config init --force'.",
			Cause:    oerrors.ErrValidation,
		}
	}

	loadedConfig = cfg
	return nil
}

// GetConfig returns the loaded configuration. Never nil after
// PersistentPreRunE has run.
func GetConfig() *config.Config {
	if loadedConfig == nil {
		return &config.Config{}
	}
	return loadedConfig
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}
