package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the defaults of the command line. Flags given explicitly
// override it.
type Config struct {
	LogLevel    string `yaml:"loglevel"`
	Format      string `yaml:"format"`
	Workers     int    `yaml:"workers"`
	MemoSize    int    `yaml:"memoSize"`
	EmptyAsZero bool   `yaml:"emptyAsZero"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Format:   FormatText,
		Workers:  4,
		MemoSize: 1024,
	}
}

// ConfigFromYAML reads a configuration file. Missing fields keep their
// default value.
func ConfigFromYAML(path string) (Config, error) {
	conf := DefaultConfig()

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return conf, xerrors.Errorf("failed to read config: %w", err)
	}

	err = yaml.Unmarshal(yamlFile, &conf)
	if err != nil {
		return conf, xerrors.Errorf("failed to decode config %s: %w", path, err)
	}

	return conf, conf.Validate()
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	_, err := c.Level()
	if err != nil {
		return err
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return xerrors.Errorf("unknown output format %q", c.Format)
	}

	if c.Workers < 0 {
		return xerrors.Errorf("workers must not be negative, got %d", c.Workers)
	}

	if c.MemoSize < 0 {
		return xerrors.Errorf("memoSize must not be negative, got %d", c.MemoSize)
	}

	return nil
}

// Level parses the log level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, xerrors.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
