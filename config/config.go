package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the optional JSON config file looked up in the config dir.
const FileName = "snake.cfg.json"

// StoreConfig selects and locates the high score backend.
type StoreConfig struct {
	Type string `json:"type" mapstructure:"type"`
	Path string `json:"path" mapstructure:"path"`
	DSN  string `json:"dsn" mapstructure:"dsn"`
}

// GameConfig holds simulation tuning.
type GameConfig struct {
	BaseTickRate float64 `json:"baseTickRate" mapstructure:"baseTickRate"`
	Seed         uint64  `json:"seed" mapstructure:"seed"`
}

// Load sets default values and reads the config file from configDir if
// there is one. A missing file is not an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")

	viper.SetDefault("store.type", "file")
	viper.SetDefault("store.path", "")
	viper.SetDefault("store.dsn", "")

	viper.SetDefault("game.baseTickRate", 9.0)
	viper.SetDefault("game.seed", 0)

	viper.SetDefault("window.title", "Snake")

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// BindFlags wires command line flags to their config keys. Only flags the
// user actually set override the file and defaults.
func BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"logLevel":   "log-level",
		"logFile":    "log-file",
		"store.type": "store",
		"store.path": "store-path",
		"store.dsn":  "store-dsn",
		"game.seed":  "seed",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// GetStoreConfig returns the high score backend settings. An empty path
// falls back to the backend's default file name.
func GetStoreConfig() StoreConfig {
	cfg := StoreConfig{
		Type: viper.GetString("store.type"),
		Path: viper.GetString("store.path"),
		DSN:  viper.GetString("store.dsn"),
	}
	if cfg.Path == "" {
		switch cfg.Type {
		case "file":
			cfg.Path = "score.dat"
		case "sqlite":
			cfg.Path = "snake.db"
		}
	}
	return cfg
}

// GetGameConfig returns the simulation settings.
func GetGameConfig() GameConfig {
	return GameConfig{
		BaseTickRate: viper.GetFloat64("game.baseTickRate"),
		Seed:         viper.GetUint64("game.seed"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}
