package config

import (
	"strconv"

	"github.com/spf13/cobra"
)

// Environment variables read by ApplyEnv.
const (
	EnvOwner   = "TOKEN_LAUNCHER_OWNER"
	EnvRepo    = "TOKEN_LAUNCHER_REPO"
	EnvAPIURL  = "TOKEN_LAUNCHER_API_URL"
	EnvNoColor = "NO_COLOR"
)

// ApplyEnv layers environment overrides over the current values. This
// handles the priority: config.toml < env < flag.
func (c *EffectiveConfig) ApplyEnv(getenv func(string) string) {
	applyEnvString(&c.Owner, getenv(EnvOwner))
	applyEnvString(&c.Repo, getenv(EnvRepo))
	applyEnvString(&c.APIURL, getenv(EnvAPIURL))

	// NO_COLOR is set-means-enable, whatever its value.
	if getenv(EnvNoColor) != "" {
		c.NoColor = BoolValue{Value: true, Source: SourceEnvironment}
	}
}

func applyEnvString(v *StringValue, envValue string) {
	if envValue != "" {
		v.Value, v.Source = envValue, SourceEnvironment
	}
}

// ApplyStringFlag overrides v with the flag value if the flag was
// explicitly set on the command line.
func ApplyStringFlag(cmd *cobra.Command, flagName string, v *StringValue) {
	if !flagChanged(cmd, flagName) {
		return
	}
	if value, err := cmd.Flags().GetString(flagName); err == nil {
		v.Value, v.Source = value, SourceFlag
	}
}

// ApplyIntFlag overrides v with the flag value if the flag was explicitly set.
func ApplyIntFlag(cmd *cobra.Command, flagName string, v *IntValue) {
	if !flagChanged(cmd, flagName) {
		return
	}
	if value, err := cmd.Flags().GetInt(flagName); err == nil {
		v.Value, v.Source = value, SourceFlag
	}
}

// ApplyBoolFlag overrides v with the flag value if the flag was explicitly
// set. This is critical for preventing a default false flag from overriding
// a config true value.
func ApplyBoolFlag(cmd *cobra.Command, flagName string, v *BoolValue) {
	if !flagChanged(cmd, flagName) {
		return
	}
	if value, err := cmd.Flags().GetBool(flagName); err == nil {
		v.Value, v.Source = value, SourceFlag
	}
}

// ApplyDurationFlag overrides v with a duration flag, stored in its string
// form so Resolve parses every source the same way.
func ApplyDurationFlag(cmd *cobra.Command, flagName string, v *StringValue) {
	if !flagChanged(cmd, flagName) {
		return
	}
	if value, err := cmd.Flags().GetDuration(flagName); err == nil {
		v.Value, v.Source = value.String(), SourceFlag
	}
}

func flagChanged(cmd *cobra.Command, flagName string) bool {
	f := cmd.Flags().Lookup(flagName)
	return f != nil && f.Changed
}

// boolString renders b for TOML output.
func boolString(b bool) string {
	return strconv.FormatBool(b)
}
