package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 0, cfg.Auth.BcryptCost)

	require.Len(t, cfg.Roster, 5)
	assert.Equal(t, int64(1), cfg.Roster[0].ID)
	assert.Equal(t, "UserNyrbai", cfg.Roster[0].Login)
	assert.Equal(t, "111", cfg.Roster[0].Password)
	assert.Equal(t, "Аскербек", cfg.Roster[4].Name)
	assert.NotEmpty(t, cfg.Roster[2].Ava)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TASKAPI_SERVER_PORT", "9191")
	t.Setenv("TASKAPI_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKAPI_AUTH_BCRYPT_COST", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("TASKAPI_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}
