package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Providers ProvidersConfig `toml:"providers"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// ProvidersConfig holds per-provider API credentials.
type ProvidersConfig struct {
	NewsAPI  ProviderConfig `toml:"newsapi"`
	Guardian ProviderConfig `toml:"guardian"`
	NYT      ProviderConfig `toml:"nyt"`
}

// ProviderConfig holds the settings for one upstream news API.
type ProviderConfig struct {
	APIKey string `toml:"api_key"`
}

const defaultConfigContent = `[server]
port = 8080

[providers.newsapi]
api_key = ""                      # or set NEWSAPI_API_KEY

[providers.guardian]
api_key = ""                      # or set GUARDIAN_API_KEY

[providers.nyt]
api_key = ""                      # or set NYT_API_KEY
`

// Load reads and parses the TOML config from the given path. If the file
// does not exist, it creates a default config file at that path. Environment
// variables override values from the file with highest priority.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "port = 0" is an error rather than silently
	// being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
// This catches cases like "port = 0" which would otherwise be silently
// replaced by the default value.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables take highest priority over config file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NEWSAPI_API_KEY"); v != "" {
		cfg.Providers.NewsAPI.APIKey = v
	}
	if v := os.Getenv("GUARDIAN_API_KEY"); v != "" {
		cfg.Providers.Guardian.APIKey = v
	}
	if v := os.Getenv("NYT_API_KEY"); v != "" {
		cfg.Providers.NYT.APIKey = v
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}

	if cfg.Providers.NewsAPI.APIKey == "" &&
		cfg.Providers.Guardian.APIKey == "" &&
		cfg.Providers.NYT.APIKey == "" {
		slog.Warn("no provider API keys configured: set them in the config file or via environment variables")
	}

	return nil
}
