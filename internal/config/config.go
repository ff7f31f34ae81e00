package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Database DatabaseConfig `toml:"database" mapstructure:"database"`
	Logging  LoggingConfig  `toml:"logging" mapstructure:"logging"`
	Admin    AdminConfig    `toml:"admin" mapstructure:"admin"`
	Export   ExportConfig   `toml:"export" mapstructure:"export"`
}

// DatabaseConfig holds the storage configuration.
type DatabaseConfig struct {
	Path string `toml:"path" mapstructure:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level" mapstructure:"level"`
}

// AdminConfig holds settings for the admin console login.
// PasswordHash and TokenSecret are generated on first run and persisted
// back to the config file; they are never read from env or flags.
type AdminConfig struct {
	Username           string `toml:"username" mapstructure:"username"`
	PasswordHash       string `toml:"password_hash" mapstructure:"password_hash"`
	TokenSecret        string `toml:"token_secret" mapstructure:"token_secret"`
	SessionDurationMin int    `toml:"session_duration_min" mapstructure:"session_duration_min"`
	SessionFile        string `toml:"session_file" mapstructure:"session_file"`
}

// ExportConfig holds settings for admin catalog exports.
type ExportConfig struct {
	Dir string `toml:"dir" mapstructure:"dir"`
}

// Load reads the configuration from a TOML file, layering defaults and
// LEARNHUB_* environment variables underneath. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault("database.path", "learnhub.db")
	v.SetDefault("logging.level", "info")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.session_duration_min", 60)
	v.SetDefault("admin.session_file", ".learnhub-session")
	v.SetDefault("export.dir", "exports")

	v.SetEnvPrefix("LEARNHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return &cfg, nil
}

// Save writes the current configuration back to a TOML file.
// Used to persist the auto-generated admin password hash and token secret.
func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}
