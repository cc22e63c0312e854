/* config.go
 * Contains the process configuration and its loader. Values are layered as defaults, then an optional YAML file named
 * by BRACKET_CONFIG, then environment variables prefixed with BRACKET_
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"playoff-bracket/api/bracket"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "BRACKET_"
	envConfig = "BRACKET_CONFIG"
)

// listKeys are read from the environment as comma separated values
var listKeys = map[string]bool{"teams": true, "admins": true}

// Config contains process configuration
type Config struct {
	MongoURI   string `koanf:"mongo_uri"`
	Database   string `koanf:"database"`
	Season     string `koanf:"season"`
	Addr       string `koanf:"addr"`
	ReportPath string `koanf:"report_path"`

	// LogLevel is one of trace, debug, info, warn, error. LogFormat is console or json
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// MetricsNamespace prefixes every exported metric name
	MetricsNamespace string `koanf:"metrics_namespace"`

	// Workers bounds how many entries are scored at once
	Workers int `koanf:"workers"`

	// Layout names the slot layout, "nfl" or "legacy"
	Layout string `koanf:"layout"`

	// Teams is the playoff field. Entries naming a team outside it are rejected. Empty accepts any name
	Teams []string `koanf:"teams"`

	// Admins are the Discord user ids allowed to record results
	Admins []string `koanf:"admins"`

	// WebhookSecret, when set, must be sent in the X-Webhook-Secret header of every write request
	WebhookSecret string `koanf:"webhook_secret"`

	DiscordToken     string `koanf:"discord_token"`
	DiscordBetaToken string `koanf:"discord_beta_token"`
}

// New returns a Config holding the defaults
func New() *Config {
	return &Config{
		MongoURI:   "mongodb://localhost:27017",
		Database:   "playoff_bracket",
		Season:     "2025-26",
		Addr:       ":8080",
		ReportPath: "bracket_scores.html",
		LogLevel:   "info",
		LogFormat:  "console",
		Workers:    4,
		Layout:     bracket.NFLLayout().Name,

		MetricsNamespace: "playoff_bracket",
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Preconditions: none, BRACKET_CONFIG may name a YAML file
// Postconditions: Returns the validated Config, or an error if a source could not be read or a value is invalid
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// BRACKET_MONGO_URI -> mongo_uri. List values are comma separated
	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		if key == envConfig {
			return "", nil
		}
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the rest of the program relies on
func (c *Config) Validate() error {
	if c.Season == "" {
		return errors.New("season must not be empty")
	}
	if c.Database == "" {
		return errors.New("database must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := bracket.LayoutByName(c.Layout); err != nil {
		return err
	}
	return nil
}

// BracketLayout returns the configured layout
func (c *Config) BracketLayout() bracket.Layout {
	layout, err := bracket.LayoutByName(c.Layout)
	if err != nil {
		return bracket.NFLLayout()
	}
	return layout
}

// IsAdmin reports whether a Discord user id may record results. A nil Config has no admins
func (c *Config) IsAdmin(userID string) bool {
	if c == nil {
		return false
	}
	for _, id := range c.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
