package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MP_DB", "MP_PORT", "MP_DEV_MODE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Empty(t, cfg.DBPath)
	assert.False(t, cfg.DevMode)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "db_path: /tmp/parts.db\nport: 9090\ndev_mode: true\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/parts.db", cfg.DBPath)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.DevMode)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "db_path: /srv/parts.db\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/parts.db", cfg.DBPath)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "db_path: /from/file.db\nport: 9090\n")
	t.Setenv("MP_DB", "/from/env.db")
	t.Setenv("MP_PORT", "7070")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_EnvFalseOverridesFileTrue(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "dev_mode: true\nport: 9090\n")
	t.Setenv("MP_DEV_MODE", "false")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("MP_DEV_MODE", "true")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.yaml")
			},
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) string {
				return writeConfig(t, "port: [not a number\n")
			},
		},
		{
			name: "bad env value",
			setup: func(t *testing.T) string {
				t.Setenv("MP_PORT", "eighty")
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := tt.setup(t)

			_, err := Load(path)

			assert.Error(t, err)
		})
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("MP_PORT", "70000")

	_, err := Load("")

	assert.ErrorIs(t, err, ErrInvalidPort)
}
