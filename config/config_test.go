package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"store": { "type": "sqlite", "path": "/tmp/scores.db" },
		"game": { "baseTickRate": 12, "seed": 99 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, StoreConfig{Type: "sqlite", Path: "/tmp/scores.db"}, GetStoreConfig())
	assert.Equal(t, GameConfig{BaseTickRate: 12, Seed: 99}, GetGameConfig())
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "", viper.GetString("logFile"))
	assert.Equal(t, "Snake", viper.GetString("window.title"))
	assert.Equal(t, StoreConfig{Type: "file", Path: "score.dat"}, GetStoreConfig())
	assert.Equal(t, GameConfig{BaseTickRate: 9, Seed: 0}, GetGameConfig())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "file", viper.GetString("store.type"))
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestGetStoreConfig_SqliteDefaultPath(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(t.TempDir()))

	viper.Set("store.type", "sqlite")

	assert.Equal(t, "snake.db", GetStoreConfig().Path)
}

func TestBindFlags_OverridesFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel":"warn"}`), 0644))
	require.NoError(t, Load(dir))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "", "")
	fs.String("store", "", "")
	require.NoError(t, BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--store", "sqlite"}))

	assert.Equal(t, "warn", GetString("logLevel"))
	assert.Equal(t, "sqlite", GetString("store.type"))
}

func TestGetters(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", "testValue")

	assert.Equal(t, "testValue", GetString("testKey"))
}
