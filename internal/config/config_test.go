package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
)

type captureLogger struct {
	warnings []string
}

func (l *captureLogger) Info(string, ...interface{})    {}
func (l *captureLogger) Error(string, ...interface{})   {}
func (l *captureLogger) Debug(string, ...interface{})   {}
func (l *captureLogger) Success(string, ...interface{}) {}
func (l *captureLogger) Warn(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadFileConfig_NoFiles(t *testing.T) {
	dir := t.TempDir()
	cfg, path, err := NewConfigLoader(filepath.Join(dir, "home"), "", nil).WithWorkDir(dir).LoadFileConfig()
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.True(t, cfg.IsEmpty())
}

func TestLoadFileConfig_MergePriority(t *testing.T) {
	dir := t.TempDir()
	home := filepath.Join(dir, "home")
	work := filepath.Join(dir, "work")
	explicit := filepath.Join(dir, "explicit.toml")

	writeFile(t, filepath.Join(home, "config.toml"), `
owner = "home-owner"
repo = "home-repo"
max_attempts = 5

[wallet]
trusted = true
`)
	writeFile(t, filepath.Join(work, "config.toml"), `
repo = "work-repo"
network = "mainnet"
`)
	writeFile(t, explicit, `
owner = "explicit-owner"

[wallet]
public_key = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
`)

	cfg, path, err := NewConfigLoader(home, explicit, nil).WithWorkDir(work).LoadFileConfig()
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
	assert.Equal(t, "explicit-owner", *cfg.Owner)
	assert.Equal(t, "work-repo", *cfg.Repo)
	assert.Equal(t, "mainnet", *cfg.Network)
	assert.Equal(t, 5, *cfg.MaxAttempts)
	require.NotNil(t, cfg.Wallet)
	assert.True(t, *cfg.Wallet.Trusted)
	assert.Equal(t, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", *cfg.Wallet.PublicKey)
}

func TestLoadFileConfig_ExplicitMissing(t *testing.T) {
	dir := t.TempDir()
	_, _, err := NewConfigLoader(dir, filepath.Join(dir, "nope.toml"), nil).WithWorkDir(dir).LoadFileConfig()
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoadFileConfig_UnknownKeysWarn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.toml"), `
owner = "acme"
github_token = "ghp_x"

[wallet]
seed_phrase = "nope"
`)
	logger := &captureLogger{}
	_, _, err := NewConfigLoader(dir, "", logger).WithWorkDir(dir).LoadFileConfig()
	require.NoError(t, err)
	require.Len(t, logger.warnings, 2)
	assert.Contains(t, logger.warnings[0]+logger.warnings[1], "github_token")
	assert.Contains(t, logger.warnings[0]+logger.warnings[1], "wallet.seed_phrase")
}

func TestValidateFileConfig(t *testing.T) {
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	tests := []struct {
		name    string
		cfg     FileConfig
		wantErr string
	}{
		{name: "empty", cfg: FileConfig{}},
		{name: "valid", cfg: FileConfig{Network: str("mainnet-beta"), TriggerMode: str("issue"), PollInterval: str("5s")}},
		{name: "bad network", cfg: FileConfig{Network: str("testnet")}, wantErr: "invalid network"},
		{name: "bad mode", cfg: FileConfig{TriggerMode: str("email")}, wantErr: "invalid trigger_mode"},
		{name: "zero attempts", cfg: FileConfig{MaxAttempts: num(0)}, wantErr: "invalid max_attempts"},
		{name: "bad duration", cfg: FileConfig{PollInterval: str("soon")}, wantErr: "invalid poll_interval"},
		{name: "negative duration", cfg: FileConfig{SimulationStep: str("-1s")}, wantErr: "invalid simulation_step"},
		{name: "bad url", cfg: FileConfig{APIURL: str("ftp://example.com")}, wantErr: "invalid api_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileConfig(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestEffectiveConfig_Defaults(t *testing.T) {
	eff, err := NewEffectiveConfig("/home/x/.token-launcher").Resolve()
	require.NoError(t, err)

	assert.Equal(t, DefaultOwner, eff.Owner)
	assert.Equal(t, DefaultRepo, eff.Repo)
	assert.Equal(t, workflow.TriggerDispatch, eff.TriggerMode)
	assert.Equal(t, token.NetworkDevnet, eff.Network)
	assert.Equal(t, 10*time.Second, eff.PollInterval)
	assert.Equal(t, 30, eff.MaxAttempts)
	assert.Equal(t, 2*time.Second, eff.SimulationStep)
	assert.Equal(t, 30*time.Second, eff.RequestTimeout)
}

func TestEffectiveConfig_PriorityChain(t *testing.T) {
	owner, repo, interval := "file-owner", "file-repo", "3s"
	c := NewEffectiveConfig("/h")
	c.ApplyFile(&FileConfig{Owner: &owner, Repo: &repo, PollInterval: &interval}, "/h/config.toml")

	env := map[string]string{EnvRepo: "env-repo", EnvNoColor: "1"}
	c.ApplyEnv(func(k string) string { return env[k] })

	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().String("repo", "", "")
	cmd.Flags().String("owner", "", "")
	cmd.Flags().Int("max-attempts", 0, "")
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().Duration("poll-interval", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--repo", "flag-repo", "--max-attempts", "4", "--poll-interval", "1m"}))

	ApplyStringFlag(cmd, "owner", &c.Owner)
	ApplyStringFlag(cmd, "repo", &c.Repo)
	ApplyIntFlag(cmd, "max-attempts", &c.MaxAttempts)
	ApplyBoolFlag(cmd, "verbose", &c.Verbose)
	ApplyDurationFlag(cmd, "poll-interval", &c.PollInterval)

	assert.Equal(t, StringValue{Value: "file-owner", Source: SourceConfigFile}, c.Owner)
	assert.Equal(t, StringValue{Value: "flag-repo", Source: SourceFlag}, c.Repo)
	assert.Equal(t, BoolValue{Value: true, Source: SourceEnvironment}, c.NoColor)
	assert.Equal(t, BoolValue{Value: false, Source: SourceDefault}, c.Verbose)
	assert.Equal(t, SourceFlag, c.MaxAttempts.Source)
	assert.Equal(t, "/h/config.toml", c.ConfigFilePath)

	eff, err := c.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "flag-repo", eff.Repo)
	assert.Equal(t, 4, eff.MaxAttempts)
	assert.Equal(t, time.Minute, eff.PollInterval)
	assert.True(t, eff.NoColor)
}

func TestEffectiveConfig_ResolveErrors(t *testing.T) {
	c := NewEffectiveConfig("/h")
	c.Network = StringValue{Value: "testnet", Source: SourceFlag}
	_, err := c.Resolve()
	assert.ErrorContains(t, err, "from flag")

	c = NewEffectiveConfig("/h")
	c.Owner.Value = ""
	assert.Error(t, c.Validate())
}

func TestEffectiveConfig_ToTable(t *testing.T) {
	c := NewEffectiveConfig("/h")
	var out strings.Builder
	c.ToTable(&out)
	assert.Contains(t, out.String(), "KEY")
	assert.Contains(t, out.String(), "owner")
	assert.Contains(t, out.String(), "(not set)")

	m := c.ToMap()
	assert.Equal(t, DefaultRepo, m["repo"].Value)
	assert.Equal(t, SourceDefault, m["repo"].Source)
}

func TestConfigWriter_RoundTrip(t *testing.T) {
	home := t.TempDir()
	owner, mode, keypair := "acme", "issue", "/keys/id.json"
	attempts := 12
	trusted := true

	w := NewConfigWriter(home)
	assert.False(t, w.Exists())
	require.NoError(t, w.Write(&FileConfig{
		Owner:       &owner,
		TriggerMode: &mode,
		MaxAttempts: &attempts,
		Wallet:      &WalletFileConfig{Keypair: &keypair, Trusted: &trusted},
	}))
	assert.True(t, w.Exists())

	cfg, _, err := NewConfigLoader(home, "", nil).WithWorkDir(home).LoadFileConfig()
	require.NoError(t, err)
	assert.Equal(t, "acme", *cfg.Owner)
	assert.Equal(t, "issue", *cfg.TriggerMode)
	assert.Equal(t, 12, *cfg.MaxAttempts)
	assert.Nil(t, cfg.Repo, "unset keys are written commented out")
	require.NotNil(t, cfg.Wallet)
	assert.Equal(t, "/keys/id.json", *cfg.Wallet.Keypair)
	assert.True(t, *cfg.Wallet.Trusted)
	assert.Nil(t, cfg.Wallet.PublicKey)
}

func TestInteractiveSetup_RunWithDefaults(t *testing.T) {
	setup := NewInteractiveSetup(t.TempDir(), os.Stdout)
	cfg := setup.RunWithDefaults()
	require.NoError(t, ValidateFileConfig(cfg))
	assert.Equal(t, DefaultOwner, *cfg.Owner)
	require.NoError(t, setup.WriteConfig(cfg))
	assert.FileExists(t, setup.Path())
}
