package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/pmrewrite/packages/collection"
	"github.com/abdul-hamid-achik/pmrewrite/packages/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IsDefault())
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, rewrite.DefaultRules(), cfg.Rules())
	assert.False(t, cfg.GetVerbose())
	assert.False(t, cfg.GetNoColor())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "rules.yaml", `
prefix: v1
authHeader:
  value: Token {{token}}
verbose: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "v1", cfg.Prefix)
	assert.Equal(t, "localhost:8080/", cfg.Host)
	assert.Equal(t, []string{"health", "auth", "graphql", "debug"}, cfg.ExcludedPaths)
	assert.Equal(t, &EntryConfig{Key: "Authorization", Value: "Token {{token}}", Type: "text"}, cfg.AuthHeader)
	assert.True(t, cfg.GetVerbose())
	assert.False(t, cfg.IsDefault())

	rules := cfg.Rules()
	assert.Equal(t, "v1", rules.Prefix)
	assert.Equal(t, collection.Header{Key: "Authorization", Value: "Token {{token}}", Type: "text"}, rules.AuthHeader)
}

func TestLoadConfig_ReplacesExcludedPaths(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "rules.yaml", `
excludedPaths:
  - status
  - metrics
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"status", "metrics"}, cfg.Rules().ExcludedPaths)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "malformed yaml", content: "prefix: [unclosed"},
		{name: "prefix with slash", content: "prefix: api/v1", invalid: true},
		{name: "host without trailing slash", content: "host: localhost:8080", invalid: true},
		{name: "empty token key", content: "tokenVariable:\n  key: \"\"", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "rules.yaml", tt.content)

			_, err := LoadConfig(path)
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
			assert.Contains(t, err.Error(), path)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFindAndLoadConfig(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		cfg, err := FindAndLoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.True(t, cfg.IsDefault())
	})

	t.Run("first matching name wins", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "pmrewrite.yaml", "prefix: second")
		writeConfig(t, dir, ".pmrewrite.yml", "prefix: first")

		cfg, err := FindAndLoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "first", cfg.Prefix)
	})
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig()

	merged := base.Merge(&Config{
		Host:    "127.0.0.1:9000/",
		Verbose: BoolPtr(true),
	})

	assert.Equal(t, "127.0.0.1:9000/", merged.Host)
	assert.Equal(t, "api", merged.Prefix)
	assert.True(t, merged.GetVerbose())
	assert.False(t, merged.GetNoColor())
	assert.Equal(t, "localhost:8080/", base.Host)

	assert.Same(t, base, base.Merge(nil))
}

func TestConfig_SaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pmrewrite.yaml")

	cfg := DefaultConfig()
	cfg.Prefix = "v2"
	require.NoError(t, cfg.SaveConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "prefix: v2")
	assert.Contains(t, string(data), "excludedPaths:")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
