// Package config provides configuration types, defaults, loading and
// persistence for dragonstore.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "DRAGONSTORE"

type Config struct {
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage"`
	Collection CollectionConfig `mapstructure:"collection" yaml:"collection"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
}

type StorageConfig struct {
	Path     string `mapstructure:"path" yaml:"path"`
	Format   string `mapstructure:"format" yaml:"format"` // "", "bolt" or "yaml"
	Autosave bool   `mapstructure:"autosave" yaml:"autosave"`
}

type CollectionConfig struct {
	ResetCounterOnClear bool `mapstructure:"reset_counter_on_clear" yaml:"reset_counter_on_clear"`
}

type LogConfig struct {
	Level   string `mapstructure:"level" yaml:"level"`
	NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
}

func Defaults() Config {
	return Config{
		Storage: StorageConfig{
			Path:     "dragons.db",
			Autosave: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// SetDefaults registers every default with v so that environment variables
// and config files can override them key by key.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.format", d.Storage.Format)
	v.SetDefault("storage.autosave", d.Storage.Autosave)
	v.SetDefault("collection.reset_counter_on_clear", d.Collection.ResetCounterOnClear)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.no_color", d.Log.NoColor)
}

// Load reads configuration from path, or when path is empty from
// ./dragonstore.yaml or ~/.config/dragonstore/config.yaml if present.
// A missing default file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dragonstore")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dragonstore"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
