// Package config loads the YAML configuration of the cityroutes binary.
//
// A file only needs the keys it overrides; everything else keeps Default():
//
//	log:
//	  level: debug        # debug | info | warn | error
//	  format: text        # text | json | off
//	http:
//	  addr: ":8080"
//	  read-timeout: 5s
//	  write-timeout: 10s
//	input:
//	  buffer-size: 65536
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatOff  = "off"
)

// Config is the root of the configuration file.
type Config struct {
	Log   Log   `yaml:"log"`
	HTTP  HTTP  `yaml:"http"`
	Input Input `yaml:"input"`
}

// Log selects the logger level and output format.
type Log struct {
	Level  Level  `yaml:"level"`
	Format string `yaml:"format"`
}

// HTTP configures the optional HTTP surface.
type HTTP struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read-timeout"`
	WriteTimeout time.Duration `yaml:"write-timeout"`
}

// Input configures the command reader.
type Input struct {
	BufferSize int `yaml:"buffer-size"`
}

// Default returns the configuration used when no file is given:
// logging off, HTTP on :8080, a 64 KiB input buffer.
func Default() Config {
	return Config{
		Log:   Log{Level: Level(slog.LevelInfo), Format: FormatOff},
		HTTP:  HTTP{Addr: ":8080", ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second},
		Input: Input{BufferSize: 64 << 10},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first value outside its domain.
func (c Config) Validate() error {
	switch c.Log.Format {
	case FormatText, FormatJSON, FormatOff:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: http.addr is empty", ErrInvalid)
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 {
		return fmt.Errorf("%w: negative http timeout", ErrInvalid)
	}
	if c.Input.BufferSize <= 0 {
		return fmt.Errorf("%w: input.buffer-size %d", ErrInvalid, c.Input.BufferSize)
	}

	return nil
}

// Level is a slog level spelled as a word in YAML and on the command line.
type Level slog.Level

// ParseLevel accepts debug, info, warn or error, in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Level(slog.LevelDebug), nil
	case "info":
		return Level(slog.LevelInfo), nil
	case "warn", "warning":
		return Level(slog.LevelWarn), nil
	case "error":
		return Level(slog.LevelError), nil
	}

	return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
}

// Slog returns l as a slog.Level.
func (l Level) Slog() slog.Level { return slog.Level(l) }

// String returns the slog spelling of l.
func (l Level) String() string { return slog.Level(l).String() }

// UnmarshalYAML decodes a level word.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}

// MarshalYAML encodes l as a lower-case word.
func (l Level) MarshalYAML() (interface{}, error) {
	return strings.ToLower(l.String()), nil
}
