package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rca/tagversion/pkg/version"
	"github.com/rca/tagversion/pkg/writefile"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, version.DefaultCalverFormat, cfg.CalverFormat)
	assert.Equal(t, writefile.DefaultPattern, cfg.Pattern)
	assert.True(t, cfg.Branch)
	assert.Empty(t, cfg.Message)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configName)
	content := "calver_format: \"%Y.%m\"\nbranch: false\nmessage: release\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "%Y.%m", cfg.CalverFormat)
	assert.False(t, cfg.Branch)
	assert.Equal(t, "release", cfg.Message)
	// Unset keys keep their defaults.
	assert.Equal(t, writefile.DefaultPattern, cfg.Pattern)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigDiscoveredMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), configName)
	require.NoError(t, os.WriteFile(path, []byte("calver_format: [\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
