package leapsec

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateEnvOverride(t *testing.T) {
	path := writeTable(t, sampleBSW)
	t.Setenv(EnvVar, path)

	got, err := Locate()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestLocateIgnoresMissingEnvFile(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.BSW"))
	setConfigHome(t)

	got, err := Locate()
	require.NoError(t, err)
	assert.NotContains(t, got, "missing.BSW")
}

func TestLocateCopiesBundledOnFirstUse(t *testing.T) {
	t.Setenv(EnvVar, "")
	home := setConfigHome(t)

	got, err := Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "gnsstime", "GPSUTC.BSW"), got)

	// the bundled table has been materialized and is loadable
	table, err := Load(got)
	require.NoError(t, err)
	assert.Equal(t, 18, table.Lookup(2024, 1, 1))

	// a second resolution finds the existing copy
	again, err := Locate()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestLocatePrefersExistingConfigFile(t *testing.T) {
	t.Setenv(EnvVar, "")
	home := setConfigHome(t)

	dir := filepath.Join(home, "gnsstime")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	custom := filepath.Join(dir, "GPSUTC.BSW")
	require.NoError(t, os.WriteFile(custom, []byte(sampleBSW), 0o644))

	got, err := Locate()
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	table, err := Load(got)
	require.NoError(t, err)
	assert.Len(t, table.Records, 3)
}

// setConfigHome points the user config directory at a fresh temp dir.
func setConfigHome(t *testing.T) string {
	t.Helper()

	if runtime.GOOS != "linux" {
		t.Skip("config dir layout is exercised on linux only")
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	return home
}
