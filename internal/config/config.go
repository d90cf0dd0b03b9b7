package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrUnknownSource is returned for a catalog.source other than "http" or "local".
var ErrUnknownSource = errors.New("unknown catalog source")

const (
	SourceHTTP  = "http"
	SourceLocal = "local"
)

// Config holds application configuration.
type Config struct {
	Catalog  CatalogConfig
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// CatalogConfig selects and tunes the catalog collaborators.
type CatalogConfig struct {
	Source            string        `mapstructure:"source"`
	BaseURL           string        `mapstructure:"base_url"`
	ImageBaseURL      string        `mapstructure:"image_base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RetryCount        int           `mapstructure:"retry_count"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
}

// DatabaseConfig holds sqlite settings for the local catalog.
type DatabaseConfig struct {
	Path string
}

type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string   `mapstructure:"currency_symbol"`
	SliderImages   []string `mapstructure:"slider_images"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "shopfront")
}

// Load reads configuration from file and env. Env var overrides use prefix SHOPFRONT_.
// An explicit path wins over SHOPFRONT_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("catalog.source", SourceLocal)
	v.SetDefault("catalog.base_url", "http://localhost:8000")
	v.SetDefault("catalog.image_base_url", "http://localhost:8000")
	v.SetDefault("catalog.timeout", "10s")
	v.SetDefault("catalog.retry_count", 2)
	v.SetDefault("catalog.requests_per_second", 20)
	v.SetDefault("database.path", filepath.Join(dataDir(), "catalog.db"))
	v.SetDefault("log.path", filepath.Join(dataDir(), "shopfront.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.slider_images", []string{})

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SHOPFRONT_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "shopfront"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOPFRONT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the app cannot run with.
func (c Config) Validate() error {
	switch c.Catalog.Source {
	case SourceHTTP:
		if strings.TrimSpace(c.Catalog.BaseURL) == "" {
			return fmt.Errorf("catalog.base_url is required for the http source")
		}
	case SourceLocal:
		if strings.TrimSpace(c.Database.Path) == "" {
			return fmt.Errorf("database.path is required for the local source")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Catalog.Source)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be positive, got %s", c.Catalog.Timeout)
	}
	return nil
}

// Save writes the provided config to path (or the default location),
// creating the config directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = os.Getenv("SHOPFRONT_CONFIG")
	}
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "shopfront", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("catalog.base_url", cfg.Catalog.BaseURL)
	v.Set("catalog.image_base_url", cfg.Catalog.ImageBaseURL)
	v.Set("catalog.timeout", cfg.Catalog.Timeout.String())
	v.Set("catalog.retry_count", cfg.Catalog.RetryCount)
	v.Set("catalog.requests_per_second", cfg.Catalog.RequestsPerSecond)
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.slider_images", cfg.UI.SliderImages)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
