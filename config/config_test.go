package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  jump_force: 11\n  coyote_ms: 0\nwindow:\n  width: -3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 11.0, cfg.Player.JumpForce)
	assert.Equal(t, int64(0), cfg.Player.CoyoteMs)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, Default().Player.MoveSpeed, cfg.Player.MoveSpeed)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("player: [1, 2"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := Default()
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	cfg.Validate()
	assert.Equal(t, Default(), cfg)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, "stats.db"), ExpandHome("~/stats.db"))
	assert.Equal(t, "/tmp/stats.db", ExpandHome("/tmp/stats.db"))
	assert.Equal(t, "~", ExpandHome("~"))
}
