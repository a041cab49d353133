// Package config loads the xps settings from a YAML file, a .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour/styles"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables, they take precedence over the files.
const (
	EnvConfig   = "XPS_CONFIG"
	EnvLedger   = "XPS_LEDGER"
	EnvCurrency = "XPS_CURRENCY"
	EnvStyle    = "XPS_STYLE"
	EnvLogLevel = "XPS_LOG_LEVEL"
	EnvNoColor  = "NO_COLOR"
)

// AutoStyle picks a dark or light style from the terminal background.
const AutoStyle = "auto"

// Config holds the xps settings.
type Config struct {
	LedgerFile string `yaml:"ledger_file"` // ledger used when -l is not given
	Currency   string `yaml:"currency"`    // ISO 4217 code used to display amounts
	Style      string `yaml:"style"`       // glamour style
	LogLevel   string `yaml:"log_level"`
	NoColor    bool   `yaml:"no_color"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Currency: "PHP",
		Style:    AutoStyle,
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/xps/config.yaml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "xps", "config.yaml")
}

// Load reads the settings.
//
// Sources are applied in increasing priority: defaults, the YAML file at
// path, the .env file at envFile, then the environment. An empty path uses
// $XPS_CONFIG or DefaultPath. Missing files are ignored unless path was
// given explicitly.
func Load(path, envFile string) (Config, error) {
	c := Default()

	var dotenv map[string]string
	if envFile != "" {
		var err error
		dotenv, err = godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	explicit := path != ""
	if !explicit {
		if p, ok := lookup(EnvConfig); ok && p != "" {
			path, explicit = p, true
		} else {
			path = DefaultPath()
		}
	}
	if path != "" {
		if err := c.loadFile(path); err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return c, err
		}
	}

	if err := c.applyEnv(lookup); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// loadFile overrides c with the fields set in a YAML file.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for key, field := range map[string]*string{
		EnvLedger:   &c.LedgerFile,
		EnvCurrency: &c.Currency,
		EnvStyle:    &c.Style,
		EnvLogLevel: &c.LogLevel,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*field = v
		}
	}
	// NO_COLOR disables colors whatever its value, see no-color.org.
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		if b, err := strconv.ParseBool(v); err != nil || b {
			c.NoColor = true
		}
	}
	return nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs error
	if money.GetCurrency(c.Currency) == nil {
		errs = errors.Join(errs, fmt.Errorf("currency: unknown code %q", c.Currency))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		errs = errors.Join(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}
	if _, ok := styles.DefaultStyles[c.Style]; !ok && c.Style != AutoStyle {
		errs = errors.Join(errs, fmt.Errorf("style: unknown style %q", c.Style))
	}
	return errs
}

// Level returns the zerolog level, warn if it is invalid.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return level
}
