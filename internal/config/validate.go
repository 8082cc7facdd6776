package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
)

// Validate validates the EffectiveConfig values against allowed ranges and types.
func (c *EffectiveConfig) Validate() error {
	_, err := c.Resolve()
	return err
}

// ValidateFileConfig validates the FileConfig values before merging.
// This is called when loading the config file to provide early error messages.
func ValidateFileConfig(cfg *FileConfig) error {
	if cfg == nil {
		return nil
	}

	if cfg.Network != nil {
		if _, err := token.ParseNetwork(*cfg.Network); err != nil {
			return fmt.Errorf("invalid network in config file: %w", err)
		}
	}

	if cfg.TriggerMode != nil {
		if _, err := workflow.ParseTriggerKind(*cfg.TriggerMode); err != nil {
			return fmt.Errorf("invalid trigger_mode in config file: %w", err)
		}
	}

	if cfg.MaxAttempts != nil && *cfg.MaxAttempts < 1 {
		return fmt.Errorf("invalid max_attempts in config file: %d (must be at least 1)", *cfg.MaxAttempts)
	}

	if cfg.APIURL != nil {
		if err := validateURL(*cfg.APIURL); err != nil {
			return fmt.Errorf("invalid api_url in config file: %w", err)
		}
	}

	for key, value := range map[string]*string{
		"poll_interval":   cfg.PollInterval,
		"simulation_step": cfg.SimulationStep,
		"request_timeout": cfg.RequestTimeout,
	} {
		if value == nil {
			continue
		}
		if _, err := parseDuration(*value); err != nil {
			return fmt.Errorf("invalid %s in config file: %w", key, err)
		}
	}

	return nil
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", s)
	}
	return d, nil
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must be an http or https URL", s)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", s)
	}
	return nil
}
