// Package commands provides the CLI command implementations for token-launcher.
// This file defines the root command and registers all subcommands.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/token-launcher/internal/config"
	"github.com/altuslabsxyz/token-launcher/internal/di"
	"github.com/altuslabsxyz/token-launcher/internal/output"
	"github.com/altuslabsxyz/token-launcher/internal/paths"
	"github.com/altuslabsxyz/token-launcher/internal/version"
)

// Command group IDs for organized help output.
const (
	GroupMain     = "main"
	GroupWallet   = "wallet"
	GroupAdvanced = "advanced"
)

// globalFlags are bound to the persistent flags of the root command.
type globalFlags struct {
	home        string
	configPath  string
	jsonMode    bool
	noColor     bool
	verbose     bool
	owner       string
	repo        string
	apiURL      string
	network     string
	triggerMode string
	maxAttempts int
}

// app is the state shared by every subcommand of one root command.
type app struct {
	flags globalFlags

	// baseOpts are applied to every container before per-command options.
	baseOpts []di.Option

	// effective holds each setting with its source; resolved is the parsed form.
	effective *config.EffectiveConfig
	resolved  config.Effective
}

// DefaultHomeDir returns the default home directory for launcher state.
func DefaultHomeDir() string {
	return paths.DefaultHomeDir()
}

// NewRootCmd creates the root command with all subcommands registered.
// opts are applied to every dependency container the commands create.
func NewRootCmd(opts ...di.Option) *cobra.Command {
	a := &app{baseOpts: opts}

	cmd := &cobra.Command{
		Use:   version.AppName,
		Short: "Create SPL tokens on Solana through a remote automation workflow",
		Long: `token-launcher collects SPL token parameters, connects a local Solana wallet
and hands the request to a GitHub Actions workflow that creates the token.

When the automation API cannot be reached, the launcher runs a local
simulation so the flow can be demonstrated offline. Simulated results are
always marked DEMO MODE.

Examples:
  # Open the interactive form
  token-launcher form

  # Create a token from flags and wait for the workflow
  token-launcher create --name "My Token" --symbol MTK --supply 1000000

  # Follow an existing workflow run
  token-launcher watch --run-id 123456789

  # Show the effective configuration
  token-launcher config show`,
		PersistentPreRunE: a.persistentPreRunE,
	}

	// Global flags available on all commands
	f := cmd.PersistentFlags()
	f.StringVarP(&a.flags.home, "home", "H", DefaultHomeDir(), "Base directory for launcher configuration")
	f.StringVar(&a.flags.configPath, "config", "", "Path to config.toml file")
	f.BoolVar(&a.flags.jsonMode, "json", false, "Output in JSON format")
	f.BoolVar(&a.flags.noColor, "no-color", false, "Disable colored output")
	f.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable verbose logging")
	f.StringVar(&a.flags.owner, "owner", "", "Automation repository owner")
	f.StringVar(&a.flags.repo, "repo", "", "Automation repository name")
	f.StringVar(&a.flags.apiURL, "api-url", "", "GitHub API base URL (or a relay)")
	f.StringVarP(&a.flags.network, "network", "n", "", "Solana network: devnet or mainnet")
	f.StringVar(&a.flags.triggerMode, "trigger-mode", "", "How to start the workflow: dispatch or issue")
	f.IntVar(&a.flags.maxAttempts, "max-attempts", 0, "Maximum workflow status checks")
	f.Duration("poll-interval", 0, "Delay between workflow status checks")

	cmd.AddGroup(&cobra.Group{ID: GroupMain, Title: "Main Commands:"})
	cmd.AddGroup(&cobra.Group{ID: GroupWallet, Title: "Wallet Commands:"})
	cmd.AddGroup(&cobra.Group{ID: GroupAdvanced, Title: "Advanced Commands:"})

	registerCommands(cmd, a)

	return cmd
}

// persistentPreRunE loads configuration in priority order:
// default < config.toml < environment < flag.
func (a *app) persistentPreRunE(cmd *cobra.Command, args []string) error {
	loader := config.NewConfigLoader(a.flags.home, a.flags.configPath, output.DefaultLogger)
	fileCfg, configFilePath, err := loader.LoadFileConfig()
	if err != nil {
		return handleCommandError(cmd, err)
	}

	eff := config.NewEffectiveConfig(DefaultHomeDir())
	if cmd.Flags().Changed("home") {
		eff.Home = config.StringValue{Value: a.flags.home, Source: config.SourceFlag}
	}
	eff.ApplyFile(fileCfg, configFilePath)
	eff.ApplyEnv(os.Getenv)

	config.ApplyBoolFlag(cmd, "json", &eff.JSON)
	config.ApplyBoolFlag(cmd, "no-color", &eff.NoColor)
	config.ApplyBoolFlag(cmd, "verbose", &eff.Verbose)
	config.ApplyStringFlag(cmd, "owner", &eff.Owner)
	config.ApplyStringFlag(cmd, "repo", &eff.Repo)
	config.ApplyStringFlag(cmd, "api-url", &eff.APIURL)
	config.ApplyStringFlag(cmd, "network", &eff.Network)
	config.ApplyStringFlag(cmd, "trigger-mode", &eff.TriggerMode)
	config.ApplyIntFlag(cmd, "max-attempts", &eff.MaxAttempts)
	config.ApplyDurationFlag(cmd, "poll-interval", &eff.PollInterval)

	resolved, err := eff.Resolve()
	if err != nil {
		return handleCommandError(cmd, err)
	}

	output.DefaultLogger.SetNoColor(resolved.NoColor)
	output.DefaultLogger.SetVerbose(resolved.Verbose)
	output.DefaultLogger.SetJSONMode(resolved.JSON)

	if configFilePath != "" {
		output.DefaultLogger.Debug("Using config file: %s", configFilePath)
	}

	a.effective = eff
	a.resolved = resolved
	return nil
}

// container creates the dependency container for one command run. Its
// logger writes to the command's streams.
func (a *app) container(cmd *cobra.Command, cfg config.Effective, opts ...di.Option) *di.Container {
	all := []di.Option{di.WithLogger(output.NewLoggerTo(cmd.OutOrStdout(), cmd.ErrOrStderr()))}
	all = append(all, a.baseOpts...)
	all = append(all, opts...)
	return di.New(cfg, all...)
}

// registerCommands registers all subcommands with appropriate group assignments.
func registerCommands(rootCmd *cobra.Command, a *app) {
	createCmd := newCreateCmd(a)
	createCmd.GroupID = GroupMain
	formCmd := newFormCmd(a)
	formCmd.GroupID = GroupMain
	watchCmd := newWatchCmd(a)
	watchCmd.GroupID = GroupMain

	walletCmd := newWalletCmd(a)
	walletCmd.GroupID = GroupWallet

	demoCmd := newDemoCmd()
	demoCmd.GroupID = GroupAdvanced
	configCmd := newConfigCmd(a)
	configCmd.GroupID = GroupAdvanced

	versionCmd := version.NewCmd(version.AppName)

	rootCmd.AddCommand(
		createCmd,
		formCmd,
		watchCmd,
		walletCmd,
		demoCmd,
		configCmd,
		versionCmd,
	)
}
