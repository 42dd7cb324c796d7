// Package config loads hwindow settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/vipcxj/hounsfield/internal/shell"
)

// EnvPrefix is prepended to every variable, e.g. HWINDOW_LEVEL.
const EnvPrefix = "HWINDOW"

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the environment-based defaults of the hwindow tool. Command
// line flags take precedence over every field.
//
// Variable names are derived from the field names with split_words, so no
// field falls back to an unprefixed variable such as SHELL.
type Config struct {
	// Env: HWINDOW_LEVEL (default: 0)
	Level int `split_words:"true" default:"0"`

	// Env: HWINDOW_WIDTH (default: 400)
	Width int `split_words:"true" default:"400"`

	// Preset names a catalog window that replaces Level and Width.
	// Env: HWINDOW_PRESET
	Preset string `split_words:"true"`

	// PresetsFile is a YAML preset catalog merged over the built-ins.
	// Env: HWINDOW_PRESETS_FILE
	PresetsFile string `split_words:"true"`

	// Env: HWINDOW_LOG_LEVEL (default: warn)
	LogLevel string `split_words:"true" default:"warn"`

	// LogFormat is text or json.
	// Env: HWINDOW_LOG_FORMAT (default: text)
	LogFormat string `split_words:"true" default:"text"`

	// Shell selects the syntax of `hwindow env`: auto, sh, powershell or cmd.
	// Env: HWINDOW_SHELL (default: auto)
	Shell string `split_words:"true" default:"auto"`
}

// LoadFromEnv reads Config from the process environment.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process environment")
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file without overriding variables
// that are already set. If path is empty, ".env" is used. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

// Load reads the optional .env file at envPath, then the environment, and
// validates the result.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, err
	}
	cfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize lower-cases the enumerated fields and trims the free-form ones.
func (c Config) Normalize() Config {
	c.Preset = strings.TrimSpace(c.Preset)
	c.PresetsFile = strings.TrimSpace(c.PresetsFile)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Shell = strings.ToLower(strings.TrimSpace(c.Shell))
	return c
}

// Validate checks the enumerated fields. Level and Width are checked when
// the window is built, LogLevel when the logger is.
func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.Errorf("invalid %s_LOG_FORMAT %q, want %s or %s", EnvPrefix, c.LogFormat, LogFormatText, LogFormatJSON)
	}
	if _, err := shell.ShellTypeString(c.Shell); err != nil {
		return errors.Wrapf(err, "invalid %s_SHELL", EnvPrefix)
	}
	return nil
}
