package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/pmrewrite/packages/collection"
	"github.com/abdul-hamid-achik/pmrewrite/packages/rewrite"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the pmrewrite configuration
type Config struct {
	Prefix        string       `yaml:"prefix,omitempty"`
	ExcludedPaths []string     `yaml:"excludedPaths,omitempty"`
	Host          string       `yaml:"host,omitempty"`
	AuthHeader    *EntryConfig `yaml:"authHeader,omitempty"`
	TokenVariable *EntryConfig `yaml:"tokenVariable,omitempty"`
	Verbose       *bool        `yaml:"verbose,omitempty"`
	NoColor       *bool        `yaml:"noColor,omitempty"`
}

// EntryConfig describes a key/value/type entry such as a header or variable.
type EntryConfig struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	Type  string `yaml:"type"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".pmrewrite.yaml",
	".pmrewrite.yml",
	"pmrewrite.yaml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file. Keys missing
// from the file keep their default values.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the rules described by the config can be applied.
func (c *Config) Validate() error {
	var problems []string

	if c.Prefix == "" {
		problems = append(problems, "prefix must not be empty")
	} else if strings.Contains(c.Prefix, "/") {
		problems = append(problems, "prefix must be a single path segment")
	}
	if c.Host == "" {
		problems = append(problems, "host must not be empty")
	} else if !strings.HasSuffix(c.Host, "/") {
		problems = append(problems, "host must end with a slash")
	}
	if c.AuthHeader == nil || c.AuthHeader.Key == "" {
		problems = append(problems, "authHeader.key must not be empty")
	}
	if c.TokenVariable == nil || c.TokenVariable.Key == "" {
		problems = append(problems, "tokenVariable.key must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Prefix != "" {
		result.Prefix = other.Prefix
	}
	if other.ExcludedPaths != nil {
		result.ExcludedPaths = other.ExcludedPaths
	}
	if other.Host != "" {
		result.Host = other.Host
	}
	if other.AuthHeader != nil {
		result.AuthHeader = other.AuthHeader
	}
	if other.TokenVariable != nil {
		result.TokenVariable = other.TokenVariable
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}

// Rules converts the config into rewrite rules. Unset entries fall back to
// the default rules.
func (c *Config) Rules() rewrite.Rules {
	rules := rewrite.DefaultRules()

	if c.Prefix != "" {
		rules.Prefix = c.Prefix
	}
	if c.ExcludedPaths != nil {
		rules.ExcludedPaths = append([]string(nil), c.ExcludedPaths...)
	}
	if c.Host != "" {
		rules.Host = c.Host
	}
	if c.AuthHeader != nil {
		rules.AuthHeader = collection.Header(*c.AuthHeader)
	}
	if c.TokenVariable != nil {
		rules.TokenVariable = collection.Variable(*c.TokenVariable)
	}

	return rules
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
