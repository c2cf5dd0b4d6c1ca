// Package config loads petquest settings from $PETQUEST_HOME/config.yaml
// with PETQUEST_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderNone      = "none"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

type Config struct {
	Home     string
	DBPath   string
	Timezone string
	Log      LogConfig
	Coach    CoachConfig
	API      APIConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type CoachConfig struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

type APIConfig struct {
	Addr string
}

// HomeDir returns $PETQUEST_HOME or ~/.petquest.
func HomeDir() (string, error) {
	if h := strings.TrimSpace(os.Getenv("PETQUEST_HOME")); h != "" {
		return h, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".petquest"), nil
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("db_path", filepath.Join(home, "petquest.db"))
	v.SetDefault("timezone", "Local")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("coach.provider", ProviderNone)
	v.SetDefault("coach.model", "")
	v.SetDefault("coach.base_url", "")
	v.SetDefault("coach.api_key", "")
	v.SetDefault("coach.timeout", "20s")
	v.SetDefault("api.addr", "127.0.0.1:8787")
}

// Load reads config.yaml from home. A missing file is not an error; defaults
// and environment variables still apply.
func Load(home string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	v.SetEnvPrefix("PETQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, home)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	cfg := &Config{
		Home:     home,
		DBPath:   v.GetString("db_path"),
		Timezone: v.GetString("timezone"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		Coach: CoachConfig{
			Provider: strings.ToLower(v.GetString("coach.provider")),
			Model:    v.GetString("coach.model"),
			BaseURL:  v.GetString("coach.base_url"),
			APIKey:   v.GetString("coach.api_key"),
			Timeout:  v.GetDuration("coach.timeout"),
		},
		API: APIConfig{Addr: v.GetString("api.addr")},
	}
	if cfg.Coach.APIKey == "" {
		cfg.Coach.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields and the timezone.
func (c *Config) Validate() error {
	var errs []string
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is invalid, must be one of: debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q is invalid, must be text or json", c.Log.Format))
	}
	switch c.Coach.Provider {
	case ProviderNone, ProviderAnthropic, ProviderOllama:
	default:
		errs = append(errs, fmt.Sprintf("coach.provider %q is invalid, must be one of: none, anthropic, ollama", c.Coach.Provider))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Sprintf("timezone %q is invalid: %v", c.Timezone, err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Location resolves Timezone; "Local" and "" mean the system zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local", "local":
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
