package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv(KeyBaseID, "appBase")
	t.Setenv(KeyTable, "Questions")
	t.Setenv(KeyToken, "patSecret")
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv(KeyEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, ":3001", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://api.airtable.com/v0", cfg.Airtable.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Airtable.Timeout)
	assert.Empty(t, cfg.Logger.LogLevel)
	assert.Equal(t, "https://api.airtable.com/v0/appBase/Questions", cfg.Airtable.TableURL())
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv(KeyEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	setRequired(t)
	t.Setenv(KeyEnv, EnvProd)
	t.Setenv(KeyPort, "8080")
	t.Setenv(KeyTimeout, "5s")
	t.Setenv(KeyAllowedOrigins, "https://a.example.com, https://b.example.com")
	t.Setenv(KeyAPIURL, "http://localhost:9999/v0/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Airtable.Timeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:9999/v0/appBase/Questions", cfg.Airtable.TableURL())
}

func TestLoad_EnvFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "test.env")
	content := "AIRTABLE_BASE_ID=appFromFile\nAIRTABLE_TABLE_NAME=Table\nAIRTABLE_ACCESS_TOKEN=tok\nPORT=4000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(KeyEnvFile, path)

	// godotenv sets these through os.Setenv; make sure they do not leak.
	for _, key := range []string{KeyBaseID, KeyTable, KeyToken, KeyPort} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "appFromFile", cfg.Airtable.BaseID)
	assert.Equal(t, "4000", cfg.Server.Port)
}

func TestLoad_MissingRequired(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv(KeyEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(KeyBaseID, "")
	t.Setenv(KeyTable, "Questions")
	t.Setenv(KeyToken, "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingValue)
	assert.Contains(t, err.Error(), KeyBaseID)
	assert.Contains(t, err.Error(), KeyToken)
	assert.NotContains(t, err.Error(), KeyTable)
}

func TestLoad_UnknownEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv(KeyEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	setRequired(t)
	t.Setenv(KeyEnv, "staging")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging")
}
