// Package config models the ratcalc configuration, loaded from YAML or TOML
// files, and layered under command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeycumines/logiface"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Format selects how rational results are displayed.
type Format string

const (
	// FormatFraction displays the canonical fraction, e.g. "-1/2".
	FormatFraction Format = `fraction`
	// FormatDecimal displays a decimal number, with Config.Precision places.
	FormatDecimal Format = `decimal`
	// FormatBoth displays the fraction, followed by the decimal in parentheses.
	FormatBoth Format = `both`
)

// MaxPrecision is the upper bound for Config.Precision.
const MaxPrecision = 1000

var (
	ErrNotFound          = errors.New(`config: not found`)
	ErrInvalid           = errors.New(`config: invalid`)
	ErrUnsupportedFormat = errors.New(`config: unsupported file format`)
)

type (
	// Config is the ratcalc configuration. The zero value is not valid, see
	// Default.
	Config struct {
		LogLevel  string `yaml:"log_level" toml:"log-level"`
		Format    Format `yaml:"format" toml:"format"`
		Precision int    `yaml:"precision" toml:"precision"`
		Prompt    Prompt `yaml:"prompt" toml:"prompt"`
	}

	// Prompt configures the interactive mode.
	Prompt struct {
		Prefix string `yaml:"prefix" toml:"prefix"`
		Title  string `yaml:"title" toml:"title"`
	}

	// file is the decoded form of a config file, where nil means unset
	file struct {
		LogLevel  *string `yaml:"log_level" toml:"log-level"`
		Format    *string `yaml:"format" toml:"format"`
		Precision *int    `yaml:"precision" toml:"precision"`
		Prompt    struct {
			Prefix *string `yaml:"prefix" toml:"prefix"`
			Title  *string `yaml:"title" toml:"title"`
		} `yaml:"prompt" toml:"prompt"`
	}

	// Error wraps a failure to load or validate a config, with the
	// operation and (if any) the file path.
	Error struct {
		Op   string
		Path string
		Err  error
	}
)

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		LogLevel:  `info`,
		Format:    FormatFraction,
		Precision: 10,
		Prompt: Prompt{
			Prefix: `>>> `,
			Title:  `ratcalc`,
		},
	}
}

// Load reads the file at path, decoding it over Default, based on the file
// extension (.yaml, .yml or .toml). Keys missing from the file keep their
// default values. The result is validated.
func Load(path string) (Config, error) {
	const op = `config.load`

	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case `.yaml`, `.yml`:
		unmarshal = yaml.Unmarshal
	case `.toml`:
		unmarshal = toml.Unmarshal
	default:
		return Config{}, &Error{Op: op, Path: path, Err: ErrUnsupportedFormat}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return Config{}, &Error{Op: op, Path: path, Err: err}
	}

	var f file
	if err := unmarshal(b, &f); err != nil {
		return Config{}, &Error{Op: op, Path: path, Err: fmt.Errorf("%w: %w", ErrInvalid, err)}
	}
	c := Default()
	f.merge(&c)

	if err := c.Validate(); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Path = path
		}
		return Config{}, err
	}

	return c, nil
}

func (x *file) merge(c *Config) {
	if x.LogLevel != nil {
		c.LogLevel = *x.LogLevel
	}
	if x.Format != nil {
		c.Format = Format(*x.Format)
	}
	if x.Precision != nil {
		c.Precision = *x.Precision
	}
	if x.Prompt.Prefix != nil {
		c.Prompt.Prefix = *x.Prompt.Prefix
	}
	if x.Prompt.Title != nil {
		c.Prompt.Title = *x.Prompt.Title
	}
}

// Validate checks every field, returning an *Error wrapping ErrInvalid.
func (x Config) Validate() error {
	const op = `config.validate`
	invalid := func(format string, args ...any) error {
		return &Error{Op: op, Err: fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)}
	}
	if _, err := ParseLevel(x.LogLevel); err != nil {
		return invalid("log level: %q", x.LogLevel)
	}
	switch x.Format {
	case FormatFraction, FormatDecimal, FormatBoth:
	default:
		return invalid("format: %q", x.Format)
	}
	if x.Precision < 0 || x.Precision > MaxPrecision {
		return invalid("precision: %d not in [0, %d]", x.Precision, MaxPrecision)
	}
	return nil
}

// Level returns the parsed LogLevel, which must be valid.
func (x Config) Level() logiface.Level {
	level, err := ParseLevel(x.LogLevel)
	if err != nil {
		panic(err)
	}
	return level
}

// ParseLevel parses a log level keyword, case-insensitively. The keywords
// are those of [logiface.Level.String], plus the aliases "warn", "error",
// "critical", "emergency", "information", and "off" (disabled).
func ParseLevel(s string) (logiface.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case `disabled`, `off`:
		return logiface.LevelDisabled, nil
	case `emerg`, `emergency`:
		return logiface.LevelEmergency, nil
	case `alert`:
		return logiface.LevelAlert, nil
	case `crit`, `critical`:
		return logiface.LevelCritical, nil
	case `err`, `error`:
		return logiface.LevelError, nil
	case `warning`, `warn`:
		return logiface.LevelWarning, nil
	case `notice`:
		return logiface.LevelNotice, nil
	case `info`, `information`, `informational`:
		return logiface.LevelInformational, nil
	case `debug`:
		return logiface.LevelDebug, nil
	case `trace`:
		return logiface.LevelTrace, nil
	}
	return logiface.LevelDisabled, fmt.Errorf("%w: log level: %q", ErrInvalid, s)
}

func (e *Error) Error() string {
	if e == nil {
		return `<nil>`
	}
	s := e.Op
	if e.Path != `` {
		s += ` (path=` + e.Path + `)`
	}
	if e.Err != nil {
		s += `: ` + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
