package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoadMissingUsesDefaults(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, m.Load())
	assert.Equal(t, DefaultConfig(), m.Get())
	_, err := os.Stat(m.Path())
	assert.True(t, os.IsNotExist(err), "Load must not create the file")
}

func TestManager_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "json", file: "config.json"},
		{name: "yaml", file: "config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".grove", tt.file)
			m := NewManager(path)
			require.NoError(t, m.Set("workers", "3"))
			require.NoError(t, m.Set("enumerator", "default"))

			reloaded := NewManager(path)
			require.NoError(t, reloaded.Load())
			assert.Equal(t, 3, reloaded.Get().Workers)
			assert.Equal(t, "default", reloaded.Get().Enumerator)
			assert.Equal(t, DefaultConfig().Operations, reloaded.Get().Operations)
		})
	}
}

func TestManager_ExpandsEnvVars(t *testing.T) {
	t.Setenv("GROVE_TEST_LEVEL", "debug")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: ${GROVE_TEST_LEVEL}\ntheme: $GROVE_UNSET_VAR\n"), 0o644))

	m := NewManager(path)
	require.NoError(t, m.Load())
	assert.Equal(t, "debug", m.Get().LogLevel)
	assert.Equal(t, "$GROVE_UNSET_VAR", m.Get().Theme)
}

func TestManager_SetRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown key", key: "color", value: "red"},
		{name: "non-numeric workers", key: "workers", value: "many"},
		{name: "zero workers", key: "workers", value: "0"},
		{name: "bad enumerator", key: "enumerator", value: "zigzag"},
		{name: "bad log format", key: "log_format", value: "xml"},
		{name: "bad log level", key: "log_level", value: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(filepath.Join(t.TempDir(), "config.json"))
			assert.Error(t, m.Set(tt.key, tt.value))
			assert.Equal(t, DefaultConfig(), m.Get())
		})
	}
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"workers": -1}`), 0o644))

	assert.Error(t, NewManager(path).Load())
}

func TestManager_LoadRejectsUnknownLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level": "verbose"}`), 0o644))

	assert.Error(t, NewManager(path).Load())
}
