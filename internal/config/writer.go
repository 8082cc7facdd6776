package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/altuslabsxyz/token-launcher/internal/paths"
)

// ConfigWriter handles writing configuration to homeDir/config.toml.
type ConfigWriter struct {
	homeDir string
}

// NewConfigWriter creates a new ConfigWriter for the given home directory.
func NewConfigWriter(homeDir string) *ConfigWriter {
	return &ConfigWriter{
		homeDir: homeDir,
	}
}

// Path returns the full path to config.toml in homeDir.
func (w *ConfigWriter) Path() string {
	return paths.ConfigPath(w.homeDir)
}

// Exists returns true if config.toml already exists in homeDir.
func (w *ConfigWriter) Exists() bool {
	return paths.Exists(w.Path())
}

// Write saves the FileConfig to homeDir/config.toml.
// Creates homeDir if it doesn't exist.
func (w *ConfigWriter) Write(cfg *FileConfig) error {
	if err := paths.EnsureDir(w.homeDir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", w.homeDir, err)
	}

	content := w.generateTOMLWithComments(cfg)

	if err := os.WriteFile(w.Path(), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// tomlBuilder writes "key = value" for set values and a commented default
// for unset ones.
type tomlBuilder struct {
	strings.Builder
}

func (b *tomlBuilder) section(title string) {
	b.WriteString("# =============================================================================\n")
	fmt.Fprintf(b, "# %s\n", title)
	b.WriteString("# =============================================================================\n\n")
}

func (b *tomlBuilder) str(key string, value *string, def string) {
	if value != nil {
		fmt.Fprintf(b, "%s = %q\n", key, *value)
		return
	}
	fmt.Fprintf(b, "# %s = %q\n", key, def)
}

func (b *tomlBuilder) boolean(key string, value *bool, def bool) {
	if value != nil {
		fmt.Fprintf(b, "%s = %s\n", key, boolString(*value))
		return
	}
	fmt.Fprintf(b, "# %s = %s\n", key, boolString(def))
}

func (b *tomlBuilder) integer(key string, value *int, def int) {
	if value != nil {
		fmt.Fprintf(b, "%s = %d\n", key, *value)
		return
	}
	fmt.Fprintf(b, "# %s = %d\n", key, def)
}

// generateTOMLWithComments creates TOML content with section comments.
func (w *ConfigWriter) generateTOMLWithComments(cfg *FileConfig) string {
	if cfg == nil {
		cfg = &FileConfig{}
	}
	var b tomlBuilder

	b.WriteString("# token-launcher configuration file\n")
	b.WriteString("# Priority: default < config.toml < environment < CLI flag\n")
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# Location: %s\n", w.Path())
	b.WriteString("# Override with: --config /path/to/config.toml\n\n")

	b.section("Global Settings (apply to all commands)")
	b.boolean("verbose", cfg.Verbose, false)
	b.boolean("json", cfg.JSON, false)
	b.boolean("no_color", cfg.NoColor, false)
	b.WriteString("\n")

	b.section("Automation Repository")
	b.WriteString("# Requests are sent to this repository's workflow. No credentials are read\n")
	b.WriteString("# here: point api_url at a relay that adds them server-side if needed.\n")
	b.str("owner", cfg.Owner, DefaultOwner)
	b.str("repo", cfg.Repo, DefaultRepo)
	b.str("api_url", cfg.APIURL, DefaultAPIURL)
	b.str("workflow", cfg.Workflow, DefaultWorkflow)
	b.str("ref", cfg.Ref, DefaultRef)
	b.str("trigger_mode", cfg.TriggerMode, "dispatch")
	b.WriteString("\n")

	b.section("Token Defaults")
	b.str("network", cfg.Network, "devnet")
	b.WriteString("\n")

	b.section("Monitoring")
	b.str("poll_interval", cfg.PollInterval, DefaultPollInterval)
	b.integer("max_attempts", cfg.MaxAttempts, DefaultMaxAttempts)
	b.str("simulation_step", cfg.SimulationStep, DefaultSimulationStep)
	b.str("request_timeout", cfg.RequestTimeout, DefaultRequestTimeout)
	b.WriteString("\n")

	wallet := cfg.Wallet
	if wallet == nil {
		wallet = &WalletFileConfig{}
	}
	b.section("Wallet")
	b.WriteString("[wallet]\n")
	b.str("keypair", wallet.Keypair, "~/.config/solana/id.json")
	b.str("public_key", wallet.PublicKey, "")
	b.boolean("trusted", wallet.Trusted, false)

	return b.String()
}
