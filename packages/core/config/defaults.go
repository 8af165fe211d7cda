package config

import "github.com/abdul-hamid-achik/pmrewrite/packages/rewrite"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	rules := rewrite.DefaultRules()
	return &Config{
		Prefix:        rules.Prefix,
		ExcludedPaths: rules.ExcludedPaths,
		Host:          rules.Host,
		AuthHeader: &EntryConfig{
			Key:   rules.AuthHeader.Key,
			Value: rules.AuthHeader.Value,
			Type:  rules.AuthHeader.Type,
		},
		TokenVariable: &EntryConfig{
			Key:   rules.TokenVariable.Key,
			Value: rules.TokenVariable.Value,
			Type:  rules.TokenVariable.Type,
		},
		Verbose: BoolPtr(false),
		NoColor: BoolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Prefix == defaults.Prefix &&
		equalStrings(c.ExcludedPaths, defaults.ExcludedPaths) &&
		c.Host == defaults.Host &&
		equalEntry(c.AuthHeader, defaults.AuthHeader) &&
		equalEntry(c.TokenVariable, defaults.TokenVariable) &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor()
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalEntry(a, b *EntryConfig) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
