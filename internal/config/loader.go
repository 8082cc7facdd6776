package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/paths"
)

// ConfigLoader is responsible for loading and merging configuration.
type ConfigLoader struct {
	homeDir    string
	configPath string // Explicit --config path
	workDir    string
	logger     ports.Logger
}

// NewConfigLoader creates a new ConfigLoader. logger may be nil.
func NewConfigLoader(homeDir, configPath string, logger ports.Logger) *ConfigLoader {
	return &ConfigLoader{
		homeDir:    homeDir,
		configPath: configPath,
		workDir:    ".",
		logger:     logger,
	}
}

// WithWorkDir sets the directory searched for ./config.toml.
func (l *ConfigLoader) WithWorkDir(dir string) *ConfigLoader {
	l.workDir = dir
	return l
}

// configFiles lists existing config files in order of increasing priority:
// ~/.token-launcher/config.toml, ./config.toml, then the --config path.
func (l *ConfigLoader) configFiles() ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		files = append(files, path)
	}

	if homePath := paths.ConfigPath(l.homeDir); paths.Exists(homePath) {
		add(homePath)
	}

	if localPath := filepath.Join(l.workDir, paths.ConfigFile); paths.Exists(localPath) {
		add(localPath)
	}

	if l.configPath != "" {
		if _, err := os.Stat(l.configPath); err != nil {
			return nil, fmt.Errorf("config file not found: %s", l.configPath)
		}
		add(l.configPath)
	}

	return files, nil
}

// LoadFileConfig loads and parses config files, merging them in priority order.
// Priority: explicit path > ./config.toml > ~/.token-launcher/config.toml
// All config files are merged, with higher priority values overwriting lower ones.
// Returns the merged FileConfig and the primary (highest priority) config file path.
func (l *ConfigLoader) LoadFileConfig() (*FileConfig, string, error) {
	configFiles, err := l.configFiles()
	if err != nil {
		return nil, "", err
	}

	if len(configFiles) == 0 {
		// No config file found - return empty config
		return &FileConfig{}, "", nil
	}

	// Load and merge all configs (later files override earlier ones)
	var merged FileConfig
	var primaryFile string
	for _, configFile := range configFiles {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}

		var cfg FileConfig
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}

		mergeFileConfig(&merged, &cfg)
		primaryFile = configFile

		l.warnUnknownKeys(configFile, data)

		if l.logger != nil {
			l.logger.Debug("Loaded config file: %s", configFile)
		}
	}

	if err := ValidateFileConfig(&merged); err != nil {
		return nil, "", fmt.Errorf("config validation failed: %w", err)
	}

	return &merged, primaryFile, nil
}

// mergeFileConfig merges src into dst. Non-nil values in src overwrite dst.
func mergeFileConfig(dst, src *FileConfig) {
	mergePtr(&dst.NoColor, src.NoColor)
	mergePtr(&dst.Verbose, src.Verbose)
	mergePtr(&dst.JSON, src.JSON)
	mergePtr(&dst.Owner, src.Owner)
	mergePtr(&dst.Repo, src.Repo)
	mergePtr(&dst.APIURL, src.APIURL)
	mergePtr(&dst.Workflow, src.Workflow)
	mergePtr(&dst.Ref, src.Ref)
	mergePtr(&dst.TriggerMode, src.TriggerMode)
	mergePtr(&dst.Network, src.Network)
	mergePtr(&dst.PollInterval, src.PollInterval)
	mergePtr(&dst.MaxAttempts, src.MaxAttempts)
	mergePtr(&dst.SimulationStep, src.SimulationStep)
	mergePtr(&dst.RequestTimeout, src.RequestTimeout)

	if src.Wallet != nil {
		if dst.Wallet == nil {
			dst.Wallet = &WalletFileConfig{}
		}
		mergePtr(&dst.Wallet.Keypair, src.Wallet.Keypair)
		mergePtr(&dst.Wallet.PublicKey, src.Wallet.PublicKey)
		mergePtr(&dst.Wallet.Trusted, src.Wallet.Trusted)
	}
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

var knownKeys = map[string]bool{
	"no_color":        true,
	"verbose":         true,
	"json":            true,
	"owner":           true,
	"repo":            true,
	"api_url":         true,
	"workflow":        true,
	"ref":             true,
	"trigger_mode":    true,
	"network":         true,
	"poll_interval":   true,
	"max_attempts":    true,
	"simulation_step": true,
	"request_timeout": true,
	"wallet":          true,
}

var knownWalletKeys = map[string]bool{
	"keypair":    true,
	"public_key": true,
	"trusted":    true,
}

// warnUnknownKeys checks for unknown keys in the config file and logs warnings.
func (l *ConfigLoader) warnUnknownKeys(file string, data []byte) {
	if l.logger == nil {
		return
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return // Ignore errors here - main parsing will catch them
	}

	for key, value := range raw {
		if !knownKeys[key] {
			l.logger.Warn("Unknown config key in %s: %s", file, key)
			continue
		}
		if key != "wallet" {
			continue
		}
		table, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		for sub := range table {
			if !knownWalletKeys[sub] {
				l.logger.Warn("Unknown config key in %s: wallet.%s", file, sub)
			}
		}
	}
}
