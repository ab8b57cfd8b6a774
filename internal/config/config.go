// Package config loads the dlg configuration from ~/.config/dlg/config.toml.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// ThemeConfig holds theme-related configuration.
type ThemeConfig struct {
	Name string `toml:"name"` // preset name: "default", "dracula", "catppuccin", "none"
	Mode string `toml:"mode"` // "auto", "light", or "dark"

	// Individual color overrides (ANSI number or hex string)
	Primary string `toml:"primary"`
	Accent  string `toml:"accent"`
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Muted   string `toml:"muted"`
	Normal  string `toml:"normal"`
	Info    string `toml:"info"`
}

// DialogConfig holds default texts for the confirm dialog.
// Empty values fall back to the dialog package defaults.
type DialogConfig struct {
	Title       string `toml:"title"`
	ConfirmText string `toml:"confirm_text"`
	CancelText  string `toml:"cancel_text"`
}

// NotifyConfig controls the desktop notification fallback for alerts.
type NotifyConfig struct {
	Desktop bool `toml:"desktop"`
}

// Config holds the dlg configuration.
type Config struct {
	Theme  ThemeConfig  `toml:"theme"`
	Dialog DialogConfig `toml:"dialog"`
	Notify NotifyConfig `toml:"notify"`
}

// ValidThemeNames lists the accepted theme preset names.
var ValidThemeNames = []string{"none", "default", "dracula", "catppuccin"}

// ValidThemeModes lists the accepted theme modes.
var ValidThemeModes = []string{"auto", "light", "dark"}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Notify: NotifyConfig{Desktop: true},
	}
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, c *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext retrieves the config from context.
// Returns the default config if none is attached.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return c
	}
	def := Default()
	return &def
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dlg", "config.toml"), nil
}

// Load reads config from ~/.config/dlg/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Theme.Name != "" && !slices.Contains(ValidThemeNames, cfg.Theme.Name) {
		return Default(), fmt.Errorf("invalid theme.name %q: must be one of %v", cfg.Theme.Name, ValidThemeNames)
	}
	if cfg.Theme.Mode != "" && !slices.Contains(ValidThemeModes, cfg.Theme.Mode) {
		return Default(), fmt.Errorf("invalid theme.mode %q: must be one of %v", cfg.Theme.Mode, ValidThemeModes)
	}

	return cfg, nil
}

const defaultConfig = `# dlg configuration

# Theme for the dialog overlays
#
# [theme]
# name = "default"   # default, dracula, catppuccin, none
# mode = "auto"      # auto, light, dark
#
# Individual colors can be overridden with ANSI numbers or hex values:
# primary = "#89b4fa"
# accent = "212"

# Default texts for the confirm dialog
# Flags always win over these values.
#
# [dialog]
# title = "Are you sure?"
# confirm_text = "Confirm"
# cancel_text = "Cancel"

# Desktop notification fallback
# "dlg alert" sends a desktop notification when stderr is not a terminal
# (or when --desktop is passed). Set to false to disable the fallback.
#
[notify]
desktop = true
`

// Init creates a default config file at ~/.config/dlg/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
