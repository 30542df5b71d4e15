package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Full(t *testing.T) {
	settings, err := Parse([]byte(`
rendering:
  driver: opengl3
xr:
  openxr:
    foveation_level: 3
    foveation_dynamic: true
`))
	require.NoError(t, err)
	require.Equal(t, "opengl3", settings.Rendering.Driver)
	require.Equal(t, FoveationSettings{
		FoveationLevel:   3,
		FoveationDynamic: true,
	}, settings.Foveation())
}

func TestParse_Defaults(t *testing.T) {
	settings, err := Parse([]byte(`
xr:
  openxr:
    foveation_dynamic: true
`))
	require.NoError(t, err)
	require.Equal(t, "vulkan", settings.Rendering.Driver)
	require.Equal(t, 0, settings.Foveation().FoveationLevel)
	require.True(t, settings.Foveation().FoveationDynamic)

	settings, err = Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), *settings)
}

func TestParse_EmptyDriver(t *testing.T) {
	settings, err := Parse([]byte(`
rendering:
  driver: ""
`))
	require.NoError(t, err)
	require.Equal(t, "vulkan", settings.Rendering.Driver)
}

func TestParse_OutOfRangeLevelPassesThrough(t *testing.T) {
	settings, err := Parse([]byte(`
xr:
  openxr:
    foveation_level: 7
`))
	require.NoError(t, err)
	require.Equal(t, 7, settings.Foveation().FoveationLevel)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`
xr:
  openxr:
    foveation_level: high
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse project settings")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte("xr:\n  openxr:\n    foveation_level: 2\n"), 0o600))

	settings, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, settings.Foveation().FoveationLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read project settings")
}
