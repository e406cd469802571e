package config

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/pkg/errors"
)

func TestFromEnvironmentDefaults(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 0.1, cfg.Threshold)
	assert.Equal(t, media.DefaultPlaceholderBase, cfg.PlaceholderBase)
	assert.Equal(t, 10*time.Second, cfg.ImageTimeout)
	assert.False(t, cfg.RemoteImages)
	assert.True(t, cfg.Markdown)
	assert.True(t, cfg.Mouse)
}

func TestFromEnvironmentOverrides(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{
		"REVEAL_CONTENT":        "campaign.yaml",
		"REVEAL_THEME":          " Dark ",
		"REVEAL_THRESHOLD":      "0.5",
		"REVEAL_REMOTE_IMAGES":  "true",
		"REVEAL_IMAGE_TIMEOUT":  "3s",
		"REVEAL_NAV_BREAKPOINT": "80",
		"REVEAL_MOUSE":          "false",
		"REVEAL_LOG_LEVEL":      "DEBUG",
		"THRESHOLD":             "0.9",
	})
	require.NoError(t, err)

	assert.Equal(t, "campaign.yaml", cfg.ContentPath)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 0.5, cfg.Threshold)
	assert.True(t, cfg.RemoteImages)
	assert.Equal(t, 3*time.Second, cfg.ImageTimeout)
	assert.Equal(t, 80, cfg.NavBreakpoint)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnvironmentParseError(t *testing.T) {
	_, err := FromEnvironment(map[string]string{"REVEAL_THRESHOLD": "lots"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "threshold above one", mutate: func(c *Config) { c.Threshold = 1.5 }, field: "REVEAL_THRESHOLD"},
		{name: "negative threshold", mutate: func(c *Config) { c.Threshold = -0.1 }, field: "REVEAL_THRESHOLD"},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "neon" }, field: "REVEAL_THEME"},
		{name: "zero timeout", mutate: func(c *Config) { c.ImageTimeout = 0 }, field: "REVEAL_IMAGE_TIMEOUT"},
		{name: "bad placeholder", mutate: func(c *Config) { c.PlaceholderBase = "not a url" }, field: "REVEAL_PLACEHOLDER_BASE"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, field: "REVEAL_LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := Validate(cfg)
			require.Error(t, err)

			var ve *errors.ValidationError
			require.True(t, stderrors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateAcceptsDefaultsAndThemes(t *testing.T) {
	for _, theme := range []string{"", "light", "dark", "default", "auto"} {
		cfg := Default()
		cfg.Theme = theme
		assert.NoError(t, Validate(cfg), theme)
	}
}

func TestTrackerOptions(t *testing.T) {
	cfg := Default()
	cfg.Threshold = 0.25
	assert.Equal(t, 0.25, cfg.Tracker().Threshold)
}

func TestFromEnvReadsProcessEnvironment(t *testing.T) {
	t.Setenv("REVEAL_NAV_BREAKPOINT", "120")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.NavBreakpoint)
}
