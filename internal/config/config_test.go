package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
[theme]
name = "dracula"
mode = "dark"
accent = "#123456"

[dialog]
title = "Really?"
confirm_text = "Yes"
cancel_text = "No"

[notify]
desktop = false
`)
		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "dracula", cfg.Theme.Name)
		assert.Equal(t, "dark", cfg.Theme.Mode)
		assert.Equal(t, "#123456", cfg.Theme.Accent)
		assert.Equal(t, "Really?", cfg.Dialog.Title)
		assert.Equal(t, "Yes", cfg.Dialog.ConfirmText)
		assert.Equal(t, "No", cfg.Dialog.CancelText)
		assert.False(t, cfg.Notify.Desktop)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `
[dialog]
confirm_text = "Do it"
`)
		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "Do it", cfg.Dialog.ConfirmText)
		assert.Empty(t, cfg.Dialog.Title)
		assert.True(t, cfg.Notify.Desktop, "notify.desktop should default to true")
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := writeConfig(t, `[theme`)
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "parse config file")
	})

	t.Run("invalid theme name", func(t *testing.T) {
		path := writeConfig(t, `
[theme]
name = "solarized"
`)
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "invalid theme.name")
	})

	t.Run("invalid theme mode", func(t *testing.T) {
		path := writeConfig(t, `
[theme]
mode = "midnight"
`)
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "invalid theme.mode")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Notify.Desktop)
	assert.Empty(t, cfg.Theme.Name)
	assert.Empty(t, cfg.Dialog.Title)
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		cfg := Default()
		cfg.Dialog.Title = "Hold on"
		ctx := WithConfig(context.Background(), &cfg)
		assert.Equal(t, "Hold on", FromContext(ctx).Dialog.Title)
	})

	t.Run("fallback returns defaults", func(t *testing.T) {
		got := FromContext(context.Background())
		require.NotNil(t, got)
		assert.Equal(t, Default(), *got)
	})
}

func TestInit(t *testing.T) {
	t.Run("creates default config", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		path, err := Init(false)
		require.NoError(t, err)
		assert.FileExists(t, path)

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.True(t, cfg.Notify.Desktop)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		_, err := Init(false)
		require.NoError(t, err)

		_, err = Init(false)
		assert.ErrorContains(t, err, "already exists")

		_, err = Init(true)
		assert.NoError(t, err)
	})
}
