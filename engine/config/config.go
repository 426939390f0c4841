// Package config loads the optional frameui.yaml file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	uierr "github.com/hubastard/frameui/engine/errors"
	"github.com/hubastard/frameui/engine/toolkit"
)

// FileName is the config file looked up by LoadOptional.
const FileName = "frameui.yaml"

// Config represents frameui.yaml.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Font   FontConfig   `yaml:"font"`
	Log    LogConfig    `yaml:"log"`
	Errors ErrorsConfig `yaml:"errors"`
	Images ImagesConfig `yaml:"images"`
}

// WindowConfig contains native window settings.
type WindowConfig struct {
	Title      string    `yaml:"title,omitempty"`
	Width      int       `yaml:"width,omitempty"`
	Height     int       `yaml:"height,omitempty"`
	VSync      *bool     `yaml:"vsync,omitempty"`
	ClearColor []float32 `yaml:"clear_color,omitempty"`
}

// FontConfig contains text settings.
type FontConfig struct {
	Size float32 `yaml:"size,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
	// Format is text or json.
	Format string `yaml:"format,omitempty"`
	// Verbose adds stack traces to reported errors.
	Verbose bool `yaml:"verbose,omitempty"`
}

// ErrorsConfig selects what happens when a host callback fails.
type ErrorsConfig struct {
	// Policy is one of log, propagate, close.
	Policy string `yaml:"policy,omitempty"`
}

// ImagesConfig contains image loader settings.
type ImagesConfig struct {
	// CacheSize bounds the number of decoded images kept in memory.
	CacheSize int `yaml:"cache_size,omitempty"`
	// Root is the directory relative paths and file:// URIs resolve against.
	Root string `yaml:"root,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Errors: ErrorsConfig{Policy: "log"},
		Images: ImagesConfig{CacheSize: 64},
	}
}

// LoadOptional reads frameui.yaml from dir if present. A missing file yields
// Default().
func LoadOptional(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName), true)
}

// Load reads the file at path. With optional set, a missing file yields
// Default().
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, uierr.New("config.Load", uierr.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, uierr.New("config.Parse", uierr.KindConfig, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return uierr.Newf("config.Validate", uierr.KindConfig, "window size must not be negative")
	}
	if n := len(c.Window.ClearColor); n != 0 && n != 3 && n != 4 {
		return uierr.Newf("config.Validate", uierr.KindConfig, "clear_color needs 3 or 4 components, got %d", n)
	}
	if c.Font.Size < 0 {
		return uierr.Newf("config.Validate", uierr.KindConfig, "font size must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return uierr.Newf("config.Validate", uierr.KindConfig, "unknown log format %q", c.Log.Format)
	}
	switch strings.ToLower(c.Errors.Policy) {
	case "", "log", "propagate", "close":
	default:
		return uierr.Newf("config.Validate", uierr.KindConfig, "unknown error policy %q", c.Errors.Policy)
	}
	if c.Images.CacheSize < 0 {
		return uierr.Newf("config.Validate", uierr.KindConfig, "image cache size must not be negative")
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, uierr.Newf("config.ParseLevel", uierr.KindConfig, "unknown log level %q", s)
}

// ToolkitOptions resolves window settings on top of toolkit.DefaultOptions.
func (c *Config) ToolkitOptions(appName string) toolkit.Options {
	opts := toolkit.DefaultOptions()
	opts.Title = appName
	if t := strings.TrimSpace(c.Window.Title); t != "" {
		opts.Title = t
	}
	if c.Window.Width > 0 {
		opts.Width = c.Window.Width
	}
	if c.Window.Height > 0 {
		opts.Height = c.Window.Height
	}
	if c.Window.VSync != nil {
		opts.VSync = *c.Window.VSync
	}
	if len(c.Window.ClearColor) >= 3 {
		opts.ClearColor = [4]float32{c.Window.ClearColor[0], c.Window.ClearColor[1], c.Window.ClearColor[2], 1}
		if len(c.Window.ClearColor) == 4 {
			opts.ClearColor[3] = c.Window.ClearColor[3]
		}
	}
	if c.Font.Size > 0 {
		opts.FontSize = c.Font.Size
	}
	return opts
}
