package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reveal/internal/config"
	"github.com/alexisbeaulieu97/reveal/internal/content"
	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/tui/page"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
)

// rootFlags override settings read from REVEAL_* variables. Only flags the
// user actually set take effect.
type rootFlags struct {
	content         string
	theme           string
	threshold       float64
	placeholderBase string
	remote          bool
	imageTimeout    time.Duration
	navBreakpoint   int
	markdown        bool
	mouse           bool
	animate         bool
	logLevel        string
	logFile         string
}

func (f *rootFlags) register(cmd *cobra.Command) {
	defaults := config.Default()
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.content, "content", "c", "", "Content document (.yaml, .yml or .json); the built-in campaign is used when empty")
	pf.StringVar(&f.theme, "theme", "", "Colour theme: light, dark or auto")
	pf.Float64Var(&f.threshold, "threshold", defaults.Threshold, "Visible fraction of a section that reveals it")
	pf.StringVar(&f.placeholderBase, "placeholder-base", defaults.PlaceholderBase, "Base URL of the placeholder image service")
	pf.BoolVar(&f.remote, "remote-images", defaults.RemoteImages, "Fetch http(s) images")
	pf.DurationVar(&f.imageTimeout, "image-timeout", defaults.ImageTimeout, "Timeout for a single image load")
	pf.IntVar(&f.navBreakpoint, "nav-breakpoint", defaults.NavBreakpoint, "Width from which the navbar shows every section")
	pf.BoolVar(&f.markdown, "markdown", defaults.Markdown, "Render section bodies as Markdown")
	pf.BoolVar(&f.mouse, "mouse", defaults.Mouse, "Enable mouse support")
	pf.BoolVar(&f.animate, "animate", defaults.Animate, "Animate reveals and the menu")
	pf.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "Log level: trace, debug, info, warn, error or disabled")
	pf.StringVar(&f.logFile, "log-file", "", "Append logs to this file; logs are discarded when empty")
}

// settings reads the environment and applies the flags that were set.
func (f *rootFlags) settings(cmd *cobra.Command, environment map[string]string) (config.Config, error) {
	cfg, err := config.FromEnvironment(environment)
	if err != nil {
		return config.Config{}, newCommandError("load settings", "reading REVEAL_* variables", err, "Check the values of your REVEAL_* environment variables.")
	}

	changed := cmd.Flags().Changed
	if changed("content") {
		cfg.ContentPath = f.content
	}
	if changed("theme") {
		cfg.Theme = strings.ToLower(strings.TrimSpace(f.theme))
	}
	if changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if changed("placeholder-base") {
		cfg.PlaceholderBase = f.placeholderBase
	}
	if changed("remote-images") {
		cfg.RemoteImages = f.remote
	}
	if changed("image-timeout") {
		cfg.ImageTimeout = f.imageTimeout
	}
	if changed("nav-breakpoint") {
		cfg.NavBreakpoint = f.navBreakpoint
	}
	if changed("markdown") {
		cfg.Markdown = f.markdown
	}
	if changed("mouse") {
		cfg.Mouse = f.mouse
	}
	if changed("animate") {
		cfg.Animate = f.animate
	}
	if changed("log-level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(f.logLevel))
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, newCommandError("load settings", "validating flags", err, "Run 'reveal --help' to see accepted values.")
	}
	return cfg, nil
}

func loadDocument(path string) (*content.Document, error) {
	if strings.TrimSpace(path) == "" {
		return content.Default(), nil
	}
	doc, err := content.Load(path)
	if err != nil {
		return nil, newCommandError("load content", fmt.Sprintf("reading %s", path), err, "Run 'reveal validate' on the file for details.")
	}
	return doc, nil
}

// pageOptions maps settings onto the page. Relative image paths resolve
// against the content file's directory.
func pageOptions(cfg config.Config, mode media.Mode, tty bool) (page.Options, error) {
	theme, err := components.ThemeByName(cfg.Theme)
	if err != nil {
		return page.Options{}, newCommandError("load settings", "selecting theme", err, "Use light, dark or auto.")
	}

	root := ""
	if cfg.ContentPath != "" {
		root = filepath.Dir(cfg.ContentPath)
	}

	opts := page.DefaultOptions()
	opts.Theme = theme
	opts.MarkdownStyle = markdownStyle(cfg.Theme, tty)
	opts.Markdown = cfg.Markdown
	opts.Threshold = cfg.Tracker().Threshold
	opts.PlaceholderBase = cfg.PlaceholderBase
	opts.NavBreakpoint = cfg.NavBreakpoint
	opts.Animate = cfg.Animate
	opts.Mode = mode
	opts.ImageTimeout = cfg.ImageTimeout
	opts.Loader = media.NewChainLoader(cfg.PlaceholderBase, root, cfg.RemoteImages, cfg.ImageTimeout)
	return opts, nil
}

func markdownStyle(theme string, tty bool) string {
	if !tty {
		return "notty"
	}
	switch theme {
	case "light", "dark":
		return theme
	default:
		return "auto"
	}
}
