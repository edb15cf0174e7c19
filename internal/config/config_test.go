package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1280, s.Window.Width)
	assert.Equal(t, "govcad", s.Window.Title)
	assert.Equal(t, 120.0, s.Camera.Distance)
	assert.True(t, s.Snap.Enabled)
	assert.Equal(t, 5.0, s.Snap.GridSize)
	assert.Equal(t, 5, s.Notifications.MaxVisible)
	assert.Equal(t, 200, s.Watch.DebounceMs)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 800, s.Window.Height)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "govcad.yaml")
	content := `
window:
  width: 1920
  height: 1080
snap:
  enabled: false
  grid_size: 2.5
notifications:
  max_visible: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1920, s.Window.Width)
	assert.Equal(t, 1080, s.Window.Height)
	assert.False(t, s.Snap.Enabled)
	assert.Equal(t, 2.5, s.Snap.GridSize)
	assert.Equal(t, 3, s.Notifications.MaxVisible)
	// Untouched keys keep their defaults.
	assert.Equal(t, "govcad", s.Window.Title)
	assert.Equal(t, 120.0, s.Camera.Distance)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "govcad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 10\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("camera:\n  distance: -5\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "govcad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(": not yaml ["), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
