package config

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
)

// Fallback repository used when neither config nor environment selects one.
const (
	DefaultOwner    = "altuslabsxyz"
	DefaultRepo     = "solana-token-automation"
	DefaultWorkflow = "create-token.yml"
	DefaultRef      = "main"
	DefaultAPIURL   = "https://api.github.com"
)

// Defaults for monitoring.
const (
	DefaultPollInterval   = "10s"
	DefaultMaxAttempts    = 30
	DefaultSimulationStep = "2s"
	DefaultRequestTimeout = "30s"
)

// EffectiveConfig represents the final merged configuration after applying
// the priority chain, with the source of every value.
type EffectiveConfig struct {
	// Global settings
	Home    StringValue
	NoColor BoolValue
	Verbose BoolValue
	JSON    BoolValue

	// Automation repository
	Owner       StringValue
	Repo        StringValue
	APIURL      StringValue
	Workflow    StringValue
	Ref         StringValue
	TriggerMode StringValue

	Network StringValue

	// Monitoring
	PollInterval   StringValue
	MaxAttempts    IntValue
	SimulationStep StringValue
	RequestTimeout StringValue

	// Wallet
	WalletKeypair   StringValue
	WalletPublicKey StringValue
	WalletTrusted   BoolValue

	// Metadata
	ConfigFilePath string // Path to loaded config file (empty if none)
}

// NewEffectiveConfig creates a new EffectiveConfig with default values.
func NewEffectiveConfig(defaultHomeDir string) *EffectiveConfig {
	return &EffectiveConfig{
		Home:            NewStringValue(defaultHomeDir),
		NoColor:         NewBoolValue(false),
		Verbose:         NewBoolValue(false),
		JSON:            NewBoolValue(false),
		Owner:           NewStringValue(DefaultOwner),
		Repo:            NewStringValue(DefaultRepo),
		APIURL:          NewStringValue(DefaultAPIURL),
		Workflow:        NewStringValue(DefaultWorkflow),
		Ref:             NewStringValue(DefaultRef),
		TriggerMode:     NewStringValue(string(workflow.TriggerDispatch)),
		Network:         NewStringValue(string(token.DefaultNetwork)),
		PollInterval:    NewStringValue(DefaultPollInterval),
		MaxAttempts:     NewIntValue(DefaultMaxAttempts),
		SimulationStep:  NewStringValue(DefaultSimulationStep),
		RequestTimeout:  NewStringValue(DefaultRequestTimeout),
		WalletKeypair:   NewStringValue(""),
		WalletPublicKey: NewStringValue(""),
		WalletTrusted:   NewBoolValue(false),
	}
}

// ApplyFile layers a loaded file config over the current values.
func (c *EffectiveConfig) ApplyFile(fc *FileConfig, path string) {
	if fc == nil {
		return
	}
	c.ConfigFilePath = path

	c.NoColor.apply(fc.NoColor, SourceConfigFile)
	c.Verbose.apply(fc.Verbose, SourceConfigFile)
	c.JSON.apply(fc.JSON, SourceConfigFile)
	c.Owner.apply(fc.Owner, SourceConfigFile)
	c.Repo.apply(fc.Repo, SourceConfigFile)
	c.APIURL.apply(fc.APIURL, SourceConfigFile)
	c.Workflow.apply(fc.Workflow, SourceConfigFile)
	c.Ref.apply(fc.Ref, SourceConfigFile)
	c.TriggerMode.apply(fc.TriggerMode, SourceConfigFile)
	c.Network.apply(fc.Network, SourceConfigFile)
	c.PollInterval.apply(fc.PollInterval, SourceConfigFile)
	c.MaxAttempts.apply(fc.MaxAttempts, SourceConfigFile)
	c.SimulationStep.apply(fc.SimulationStep, SourceConfigFile)
	c.RequestTimeout.apply(fc.RequestTimeout, SourceConfigFile)

	if fc.Wallet != nil {
		c.WalletKeypair.apply(fc.Wallet.Keypair, SourceConfigFile)
		c.WalletPublicKey.apply(fc.Wallet.PublicKey, SourceConfigFile)
		c.WalletTrusted.apply(fc.Wallet.Trusted, SourceConfigFile)
	}
}

// Effective is the resolved configuration handed to the rest of the
// program. It is a plain value: nothing downstream checks where a setting
// came from or whether it was set.
type Effective struct {
	Home    string
	NoColor bool
	Verbose bool
	JSON    bool

	Owner       string
	Repo        string
	APIURL      string
	Workflow    string
	Ref         string
	TriggerMode workflow.TriggerKind

	Network token.Network

	PollInterval   time.Duration
	MaxAttempts    int
	SimulationStep time.Duration
	RequestTimeout time.Duration

	Wallet WalletConfig
}

// WalletConfig selects the local wallet provider.
type WalletConfig struct {
	Keypair   string
	PublicKey string
	Trusted   bool
}

// Resolve parses and validates every value into an Effective.
func (c *EffectiveConfig) Resolve() (Effective, error) {
	network, err := token.ParseNetwork(c.Network.Value)
	if err != nil {
		return Effective{}, fmt.Errorf("invalid network (from %s): %w", c.Network.Source, err)
	}

	mode, err := workflow.ParseTriggerKind(c.TriggerMode.Value)
	if err != nil {
		return Effective{}, fmt.Errorf("invalid trigger_mode (from %s): %w", c.TriggerMode.Source, err)
	}

	if c.Owner.Value == "" || c.Repo.Value == "" {
		return Effective{}, fmt.Errorf("owner and repo must not be empty")
	}

	if c.MaxAttempts.Value < 1 {
		return Effective{}, fmt.Errorf("invalid max_attempts: %d (must be at least 1)", c.MaxAttempts.Value)
	}

	if err := validateURL(c.APIURL.Value); err != nil {
		return Effective{}, fmt.Errorf("invalid api_url (from %s): %w", c.APIURL.Source, err)
	}

	durations := make(map[string]time.Duration, 3)
	for key, v := range map[string]StringValue{
		"poll_interval":   c.PollInterval,
		"simulation_step": c.SimulationStep,
		"request_timeout": c.RequestTimeout,
	} {
		d, err := parseDuration(v.Value)
		if err != nil {
			return Effective{}, fmt.Errorf("invalid %s (from %s): %w", key, v.Source, err)
		}
		durations[key] = d
	}

	return Effective{
		Home:           c.Home.Value,
		NoColor:        c.NoColor.Value,
		Verbose:        c.Verbose.Value,
		JSON:           c.JSON.Value,
		Owner:          c.Owner.Value,
		Repo:           c.Repo.Value,
		APIURL:         c.APIURL.Value,
		Workflow:       c.Workflow.Value,
		Ref:            c.Ref.Value,
		TriggerMode:    mode,
		Network:        network,
		PollInterval:   durations["poll_interval"],
		MaxAttempts:    c.MaxAttempts.Value,
		SimulationStep: durations["simulation_step"],
		RequestTimeout: durations["request_timeout"],
		Wallet: WalletConfig{
			Keypair:   c.WalletKeypair.Value,
			PublicKey: c.WalletPublicKey.Value,
			Trusted:   c.WalletTrusted.Value,
		},
	}, nil
}

// Entry is one row of config show output.
type Entry struct {
	Key    string       `json:"key"`
	Value  string       `json:"value"`
	Source ConfigSource `json:"source"`
}

func (c *EffectiveConfig) entries() []Entry {
	row := func(key string, v fmt.Stringer, source ConfigSource) Entry {
		return Entry{Key: key, Value: v.String(), Source: source}
	}
	return []Entry{
		row("home", c.Home, c.Home.Source),
		row("no_color", c.NoColor, c.NoColor.Source),
		row("verbose", c.Verbose, c.Verbose.Source),
		row("json", c.JSON, c.JSON.Source),
		row("owner", c.Owner, c.Owner.Source),
		row("repo", c.Repo, c.Repo.Source),
		row("api_url", c.APIURL, c.APIURL.Source),
		row("workflow", c.Workflow, c.Workflow.Source),
		row("ref", c.Ref, c.Ref.Source),
		row("trigger_mode", c.TriggerMode, c.TriggerMode.Source),
		row("network", c.Network, c.Network.Source),
		row("poll_interval", c.PollInterval, c.PollInterval.Source),
		row("max_attempts", c.MaxAttempts, c.MaxAttempts.Source),
		row("simulation_step", c.SimulationStep, c.SimulationStep.Source),
		row("request_timeout", c.RequestTimeout, c.RequestTimeout.Source),
		row("wallet.keypair", c.WalletKeypair, c.WalletKeypair.Source),
		row("wallet.public_key", c.WalletPublicKey, c.WalletPublicKey.Source),
		row("wallet.trusted", c.WalletTrusted, c.WalletTrusted.Source),
	}
}

// ToTable writes the configuration as a formatted table.
func (c *EffectiveConfig) ToTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, e := range c.entries() {
		value := e.Value
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, value, e.Source)
	}
	tw.Flush()
}

// ToMap returns key -> {value, source} for JSON output.
func (c *EffectiveConfig) ToMap() map[string]Entry {
	out := make(map[string]Entry)
	for _, e := range c.entries() {
		out[e.Key] = e
	}
	return out
}
