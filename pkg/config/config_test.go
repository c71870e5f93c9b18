package config

import (
	"os"
	"path/filepath"
	"testing"

	"textcat/pkg/classify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
extensions: [".txt", ".md"]
extra_extensions: [".nfo"]
special_names: ["VERSION"]
output: combined.txt
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "combined.txt", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)

	c := classify.New(cfg.AllowRule())
	assert.True(t, c.Allowed("a.txt"))
	assert.True(t, c.Allowed("a.nfo"))
	assert.True(t, c.Allowed("version"))
	assert.False(t, c.Allowed("a.go"), "configured extensions replace the defaults")
	assert.False(t, c.Allowed("Dockerfile"), "configured special names replace the defaults")
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `output: combined.txt`)

	cfg, err := Load(path)
	require.NoError(t, err)

	c := classify.New(cfg.AllowRule())
	assert.True(t, c.Allowed("a.go"))
	assert.True(t, c.Allowed("Dockerfile"))
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "extension without dot", content: `extensions: ["txt"]`},
		{name: "extra extension without dot", content: `extra_extensions: ["nfo"]`},
		{name: "unknown log level", content: `log_level: loud`},
		{name: "invalid yaml", content: `extensions: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
