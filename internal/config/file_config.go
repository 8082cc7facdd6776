package config

// FileConfig represents the raw config.toml file contents.
// All fields are pointers to distinguish "not set" from "set to zero/false".
type FileConfig struct {
	// Global settings
	NoColor *bool `toml:"no_color"`
	Verbose *bool `toml:"verbose"`
	JSON    *bool `toml:"json"`

	// Automation repository
	Owner       *string `toml:"owner"`
	Repo        *string `toml:"repo"`
	APIURL      *string `toml:"api_url"` // GitHub API or a relay holding server-side credentials
	Workflow    *string `toml:"workflow"`
	Ref         *string `toml:"ref"`
	TriggerMode *string `toml:"trigger_mode"` // "dispatch" or "issue"

	// Token defaults
	Network *string `toml:"network"` // "devnet" or "mainnet"

	// Monitoring
	PollInterval   *string `toml:"poll_interval"` // e.g. "10s"
	MaxAttempts    *int    `toml:"max_attempts"`
	SimulationStep *string `toml:"simulation_step"`
	RequestTimeout *string `toml:"request_timeout"`

	Wallet *WalletFileConfig `toml:"wallet"`
}

// WalletFileConfig is the [wallet] table.
type WalletFileConfig struct {
	Keypair   *string `toml:"keypair"`    // solana-keygen JSON file
	PublicKey *string `toml:"public_key"` // used when no keypair is configured
	Trusted   *bool   `toml:"trusted"`    // allow silent reconnect at startup
}

// IsEmpty returns true if no configuration values are set.
func (f *FileConfig) IsEmpty() bool {
	return f.NoColor == nil &&
		f.Verbose == nil &&
		f.JSON == nil &&
		f.Owner == nil &&
		f.Repo == nil &&
		f.APIURL == nil &&
		f.Workflow == nil &&
		f.Ref == nil &&
		f.TriggerMode == nil &&
		f.Network == nil &&
		f.PollInterval == nil &&
		f.MaxAttempts == nil &&
		f.SimulationStep == nil &&
		f.RequestTimeout == nil &&
		(f.Wallet == nil || f.Wallet.IsEmpty())
}

// IsEmpty returns true if the [wallet] table sets nothing.
func (w *WalletFileConfig) IsEmpty() bool {
	return w.Keypair == nil && w.PublicKey == nil && w.Trusted == nil
}
