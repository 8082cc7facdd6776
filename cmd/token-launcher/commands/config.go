package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/token-launcher/internal/config"
	"github.com/altuslabsxyz/token-launcher/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage token-launcher configuration.

Subcommands:
  init    Write config.toml, interactively or with defaults
  show    Display current effective configuration with sources

Examples:
  # Configure interactively
  token-launcher config init

  # Show current configuration
  token-launcher config show`,
	}

	cmd.AddCommand(
		newConfigShowCmd(a),
		newConfigInitCmd(a),
	)
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current effective configuration",
		Long: `Display the current effective configuration with sources.

Shows all configuration values and where they came from:
  - default: Built-in default value
  - config.toml: Value from config file
  - environment: Value from environment variable
  - flag: Value from command-line flag`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if a.resolved.JSON {
				result := map[string]interface{}{
					"settings":    a.effective.ToMap(),
					"config_file": a.effective.ConfigFilePath,
				}
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(w, string(data))
				return nil
			}

			a.effective.ToTable(w)
			if a.effective.ConfigFilePath != "" {
				fmt.Fprintf(w, "\nConfig file: %s\n", a.effective.ConfigFilePath)
			} else {
				fmt.Fprintln(w, "\nNo config file loaded")
			}
			return nil
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force, defaults bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize or reconfigure config.toml",
		Long: `Initialize or reconfigure config.toml in the home directory.

On a terminal this runs an interactive setup; existing values are offered
as defaults. Otherwise, or with --defaults, a commented file with default
values is written.

Examples:
  # Interactive configuration
  token-launcher config init

  # Overwrite an existing config with defaults
  token-launcher config init --defaults --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setup := config.NewInteractiveSetup(a.resolved.Home, cmd.OutOrStdout())
			logger := output.NewLoggerTo(cmd.OutOrStdout(), cmd.ErrOrStderr())

			nonInteractive := defaults || !config.IsInteractive()
			if nonInteractive && config.NewConfigWriter(a.resolved.Home).Exists() && !force {
				return handleCommandError(cmd, fmt.Errorf("config file already exists: %s\nUse --force to overwrite", setup.Path()))
			}

			var fileCfg *config.FileConfig
			if nonInteractive {
				fileCfg = setup.RunWithDefaults()
			} else {
				var err error
				fileCfg, err = setup.Run()
				if errors.Is(err, config.ErrSetupCancelled) {
					logger.Info("Operation cancelled.")
					return nil
				}
				if err != nil {
					return handleCommandError(cmd, err)
				}
			}

			if err := config.ValidateFileConfig(fileCfg); err != nil {
				return handleCommandError(cmd, err)
			}
			if err := setup.WriteConfig(fileCfg); err != nil {
				return handleCommandError(cmd, err)
			}

			logger.Success("Wrote %s", setup.Path())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Write defaults without prompting")
	return cmd
}
