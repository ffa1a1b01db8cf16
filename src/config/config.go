package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const defaultFileName = ".linequery.yaml"

// Config holds the settings of the linequery command line tool. Flags given
// on the command line win over the file.
//
// Example file:
//
//	log-level: info
//	show-identifiers: true
//	line-numbers: false
//	invert-match: false
type Config struct {
	LogLevel        string `yaml:"log-level"`
	ShowIdentifiers bool   `yaml:"show-identifiers"`
	LineNumbers     bool   `yaml:"line-numbers"`
	InvertMatch     bool   `yaml:"invert-match"`

	// where the config was read from, and where Write puts it
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		LogLevel:        "warn",
		ShowIdentifiers: true,
	}
}

// DefaultPath returns ~/.linequery.yaml
func DefaultPath() (string, error) {
	path, err := homedir.Expand(filepath.Join("~", defaultFileName))
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return path, nil
}

// LoadConfig reads the config file at path. Settings missing from the file
// keep their default value. If the file doesn't exist the returned error
// satisfies os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		// not wrapped, callers check os.IsNotExist
		return nil, err
	}

	config := Default()
	// an empty file is a valid, default config
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	if _, err := config.Level(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// LoadOrDefault is LoadConfig, but a missing file gives the default config.
func LoadOrDefault(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if os.IsNotExist(err) {
		slog.Debug("no config file found, using defaults", "path", path)
		config = Default()
		config.Path = path
		return config, nil
	}
	return config, err
}

// Write saves the config to c.Path.
func (c *Config) Write() error {
	if c.Path == "" {
		return fmt.Errorf("config has no path")
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.Path, err)
	}

	return nil
}

// Level parses LogLevel. An empty level means warn.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("unknown log level '%s': %w", c.LogLevel, err)
	}
	return level, nil
}
