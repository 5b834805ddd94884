// Package config loads agriiq.yaml, the optional settings file for the login CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/flow"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "agriiq.yaml"

// ErrInvalidConfig is returned when the file does not match the schema.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every setting the login CLI reads from agriiq.yaml.
type Config struct {
	Brand       Brand         `yaml:"brand"`
	CountryCode string        `yaml:"country_code"`
	Delay       time.Duration `yaml:"delay"`
	Theme       string        `yaml:"theme,omitempty"`
	Log         LogConfig     `yaml:"log"`
}

// Brand is the header shown above the login screens.
type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

// LogConfig controls the JSON log file.
type LogConfig struct {
	File    string `yaml:"file,omitempty"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Brand: Brand{
			Name:    "Agri IQ",
			Tagline: "Learning Platform",
		},
		CountryCode: "+91",
		Delay:       flow.DefaultDelay,
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw YAML against the schema and decodes it over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	problems, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
