// Package config loads runtime settings for the page from the environment.
// Command-line flags override the loaded values afterwards.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

// EnvPrefix is prepended to every variable name in Config.
const EnvPrefix = "REVEAL_"

// Config holds the runtime settings.
type Config struct {
	// ContentPath is a YAML or JSON document. Empty uses the built-in content.
	ContentPath string `env:"CONTENT"`
	Theme       string `env:"THEME" validate:"omitempty,oneof=light dark default auto"`

	Threshold       float64       `env:"THRESHOLD" envDefault:"0.1" validate:"gte=0,lte=1"`
	PlaceholderBase string        `env:"PLACEHOLDER_BASE" validate:"required,url"`
	RemoteImages    bool          `env:"REMOTE_IMAGES" envDefault:"false"`
	ImageTimeout    time.Duration `env:"IMAGE_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	// NavBreakpoint is the terminal width at which the nav links render
	// inline instead of behind the menu button.
	NavBreakpoint int  `env:"NAV_BREAKPOINT" envDefault:"100" validate:"gte=0"`
	Markdown      bool `env:"MARKDOWN" envDefault:"true"`
	Mouse         bool `env:"MOUSE" envDefault:"true"`
	Animate       bool `env:"ANIMATE" envDefault:"true"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error disabled"`
	LogFile  string `env:"LOG_FILE"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Threshold:       visibility.DefaultThreshold,
		PlaceholderBase: media.DefaultPlaceholderBase,
		ImageTimeout:    10 * time.Second,
		NavBreakpoint:   100,
		Markdown:        true,
		Mouse:           true,
		Animate:         true,
		LogLevel:        "info",
	}
}

// FromEnv loads settings from the process environment.
func FromEnv() (Config, error) {
	return FromEnvironment(Environ())
}

// FromEnvironment loads settings from the given variables instead of the
// process environment. Keys include the REVEAL_ prefix.
func FromEnvironment(vars map[string]string) (Config, error) {
	cfg := Default()
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: vars,
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PlaceholderBase == "" {
		cfg.PlaceholderBase = media.DefaultPlaceholderBase
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Tracker returns the visibility options derived from the settings.
func (c Config) Tracker() visibility.Options {
	opts := visibility.DefaultOptions()
	opts.Threshold = c.Threshold
	return opts
}

// Environ returns the REVEAL_ variables of the process environment.
func Environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, EnvPrefix) {
			vars[key] = value
		}
	}
	return vars
}
