// Package config loads and validates fetcher configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults mirror the knobs of the scrape pipeline. They are exported so the
// CLI can reuse them as flag defaults.
const (
	DefaultURL       = "https://adum.fr/as/ed/propositionFR.pl"
	DefaultWorkers   = 12
	DefaultUserAgent = "adum-fetcher/1.0 (+https://github.com/burgesQ/adum-fetcher)"
	DefaultOutJSON   = "offres.json"
	DefaultOutHTML   = "index.html"

	// MaxWorkers caps the fetch parallelism. Every worker hits the same
	// listing URL, so anything beyond this is just load on the source site.
	MaxWorkers = 64
)

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Scrape  ScrapeConfig  `mapstructure:"scrape"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ScrapeConfig governs the fetch/parse/render pipeline.
type ScrapeConfig struct {
	URL       string `mapstructure:"url"`
	Workers   int    `mapstructure:"workers"`
	UserAgent string `mapstructure:"user_agent"`
	OutJSON   string `mapstructure:"out_json"`
	OutHTML   string `mapstructure:"out_html"`
}

// HTTPConfig configures HTTP client timeout and retry behavior.
type HTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	MaxRetries     int `mapstructure:"max_retries"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from defaults, an optional config file, the
// environment (ADUM_FETCHER_* variables), and any flags bound to v.
func Load(v *viper.Viper, path string) (Config, error) {
	v.SetEnvPrefix("ADUM_FETCHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scrape.url", DefaultURL)
	v.SetDefault("scrape.workers", DefaultWorkers)
	v.SetDefault("scrape.user_agent", DefaultUserAgent)
	v.SetDefault("scrape.out_json", DefaultOutJSON)
	v.SetDefault("scrape.out_html", DefaultOutHTML)
	v.SetDefault("http.timeout_seconds", 20)
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("logging.development", false)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Scrape.URL == "" {
		return fmt.Errorf("scrape.url must be set")
	}
	if c.Scrape.Workers <= 0 {
		return fmt.Errorf("scrape.workers must be > 0")
	}
	if c.Scrape.Workers > MaxWorkers {
		return fmt.Errorf("scrape.workers must be <= %d", MaxWorkers)
	}
	if c.Scrape.UserAgent == "" {
		return fmt.Errorf("scrape.user_agent must be set")
	}
	if c.Scrape.OutJSON == "" {
		return fmt.Errorf("scrape.out_json must be set")
	}
	if c.Scrape.OutHTML == "" {
		return fmt.Errorf("scrape.out_html must be set")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.HTTP.MaxRetries <= 0 {
		return fmt.Errorf("http.max_retries must be > 0")
	}
	return nil
}

// Timeout converts the HTTP timeout config into a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
