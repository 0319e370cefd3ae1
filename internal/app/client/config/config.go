package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultEnv           = "local"
	defaultConfigDir     = ".cardbox"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
	ConfigDir     string `mapstructure:"config_dir"`
	TokenPath     string `mapstructure:"token_path"`
	CachePath     string `mapstructure:"cache_path"`
}

// Load reads the client configuration from viper (config file plus
// environment) and derives the token and cache paths under the config dir.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("ENABLE_TLS", false)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	cfg := &Config{
		Env:           viper.GetString("APP_ENV"),
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		EnableTLS:     viper.GetBool("ENABLE_TLS"),
		ConfigDir:     configDir,
		TokenPath:     filepath.Join(configDir, "token"),
		CachePath:     filepath.Join(configDir, "cache.db"),
	}

	if cfg.ServerAddress == "" {
		return nil, fmt.Errorf("server_address must not be empty")
	}

	return cfg, nil
}

// SaveToken persists the bearer token obtained from the identity provider.
func (c *Config) SaveToken(token string) error {
	return os.WriteFile(c.TokenPath, []byte(token), 0600)
}

// Token returns the stored bearer token, or empty when none is saved yet.
func (c *Config) Token() string {
	data, err := os.ReadFile(c.TokenPath)
	if err != nil {
		return ""
	}
	return string(data)
}
