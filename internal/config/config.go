// Package config loads the optional YAML file that tunes the demos.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by the console selection.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Board selections for the game-board demo.
const (
	BoardAll = "all"
)

// DefaultWidth matches the page width used by the text renderer demo.
const DefaultWidth = 22

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the demo settings. Zero values fall back to Default().
type Config struct {
	// Width is the page width handed to renderers in the adapter demo.
	Width int `yaml:"width"`
	// OutputDir is where login.html and gameboard.txt are written. Empty means
	// the OS temp directory.
	OutputDir string `yaml:"output_dir"`
	// Color selects the character-cell console: auto, always or never.
	Color string `yaml:"color"`
	// Board picks the variant printed by the game-board demo, or "all".
	Board string `yaml:"board"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width: DefaultWidth,
		Color: ColorAuto,
		Board: BoardAll,
	}
}

// Load reads the YAML file at path on top of Default(). An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes on top of Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, c.Color)
	}
	if c.Board == "" {
		return fmt.Errorf("%w: board is required", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) normalize() {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if c.Color == "" {
		c.Color = ColorAuto
	}
	c.Board = strings.ToLower(strings.TrimSpace(c.Board))
	if c.Board == "" {
		c.Board = BoardAll
	}
	c.OutputDir = strings.TrimSpace(c.OutputDir)
}
