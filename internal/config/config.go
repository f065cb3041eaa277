package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// MinPasswordLength is the minimum accepted password length for
// registration and profile updates.
const MinPasswordLength = 5

// Config holds the configuration for the recipebox server.
type Config struct {
	// Listen is the address the recipebox server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// ServerURL is the base URL of the recipebox server, used when building image URLs.
	ServerURL string `yaml:"server_url" mapstructure:"server_url"`
	// Auth holds the authentication configuration.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Uploads holds the image upload configuration.
	Uploads *UploadsConfig `yaml:"uploads" mapstructure:"uploads"`
}

// AuthConfig holds the token authentication configuration.
type AuthConfig struct {
	// Secret is the key used to sign bearer tokens.
	Secret string `yaml:"secret" mapstructure:"secret"`
	// TokenTTL is how long an issued token stays valid.
	TokenTTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// UploadsConfig holds the image upload configuration.
type UploadsConfig struct {
	// Dir is the directory where recipe images are stored.
	Dir string `yaml:"dir" mapstructure:"dir"`
	// MaxBytes is the maximum accepted upload size.
	MaxBytes int64 `yaml:"max_bytes" mapstructure:"max_bytes"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("RECIPEBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		v.SetConfigFile(path)
	} else {
		// Search for config in common locations
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.recipebox")
		v.AddConfigPath("/etc/recipebox")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Some environment variables can be set with the RECIPEBOX_ prefix to override config file values")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	sanitizeConfig(&c)

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:8000")
	v.SetDefault("server_url", "http://localhost:8000")

	// Auth defaults
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 72*time.Hour)

	// Database defaults
	v.SetDefault("database.path", "./data/recipebox.db")

	// Upload defaults
	v.SetDefault("uploads.dir", "./data/media")
	v.SetDefault("uploads.max_bytes", 10<<20) // 10 MiB
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing recipebox config")
	}

	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}

	if c.Auth == nil {
		return fmt.Errorf("missing auth config")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth token TTL must be greater than 0")
	}

	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Uploads == nil || c.Uploads.Dir == "" {
		return fmt.Errorf("uploads directory is required")
	}
	if c.Uploads.MaxBytes <= 0 {
		return fmt.Errorf("uploads max size must be greater than 0")
	}

	return nil
}

// sanitizeConfig sanitizes the configuration values.
func sanitizeConfig(c *Config) {
	if c == nil {
		return
	}

	c.Listen = strings.TrimSpace(c.Listen)

	if c.ServerURL != "" {
		c.ServerURL = strings.TrimSuffix(strings.TrimSpace(c.ServerURL), "/")
	}
}
