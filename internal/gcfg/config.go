// Package gcfg loads the YAML configuration that seeds a contract environment.
//
// A configuration file looks like:
//
//	intensity: 1
//	trap: if-debugged
//	rules:
//	  - store.*
//	  - "!store.cache"
//	log:
//	  format: text
//	  level: info
//
// The file only seeds a fresh [gcontract.Environment];
// nothing is written back, and a process's default environment
// still starts at intensity 0.
package gcfg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gordian-engine/gdbc/gcontract"
	"gopkg.in/yaml.v3"
)

// Log formats accepted in log.format.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatPlain   = "plain"
)

// Config is the decoded configuration file.
type Config struct {
	Intensity int      `yaml:"intensity"`
	Trap      string   `yaml:"trap"`
	Rules     []string `yaml:"rules"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the environment's sink.
type LogConfig struct {
	// Format is one of text, json (log/slog handlers),
	// console (zerolog console writer), or plain (one line per entry).
	Format string `yaml:"format"`

	// Level is the minimum level written: debug, info, warn, or error.
	Level string `yaml:"level"`

	// Color enables ANSI colour in the plain and console formats.
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Trap: gcontract.TrapIfDebugged.String(),
		Log: LogConfig{
			Format: FormatText,
			Level:  "info",
		},
	}
}

// Load decodes a configuration from r, on top of [Default].
// Unknown keys are rejected, and the result is validated.
// An empty document yields the default configuration.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is [Load] on the file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FieldError reports an invalid value for one configuration key.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Validate reports every invalid field, joined into one error.
func (c Config) Validate() error {
	var errs []error

	if _, err := gcontract.ParseTrapPolicy(c.Trap); err != nil {
		errs = append(errs, FieldError{Field: "trap", Value: c.Trap, Reason: "want if-debugged, always, or never"})
	}

	if _, err := c.RuleSet(); err != nil {
		errs = append(errs, fmt.Errorf("invalid rules: %w", err))
	}

	switch c.Log.Format {
	case FormatText, FormatJSON, FormatConsole, FormatPlain:
	default:
		errs = append(errs, FieldError{Field: "log.format", Value: c.Log.Format, Reason: "want text, json, console, or plain"})
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, FieldError{Field: "log.level", Value: c.Log.Level, Reason: "want debug, info, warn, or error"})
	}

	return errors.Join(errs...)
}

// RuleSet parses the configured rules.
// A configuration without rules yields nil, which enables every scope.
func (c Config) RuleSet() (*gcontract.RuleSet, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}
	return gcontract.ReadRules(strings.NewReader(strings.Join(c.Rules, "\n")))
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, err
	}
	return lvl, nil
}
