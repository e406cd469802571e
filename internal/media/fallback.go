// Package media holds image slots and the loaders and renderers behind them.
package media

import (
	"net/url"
	"strings"
)

// DefaultPlaceholderBase is the placeholder service used when no base is
// configured. Fallback URLs append a text query to it.
const DefaultPlaceholderBase = "https://placehold.co/800x600/E0E0E0/707070"

// componentReplacer adjusts url.QueryEscape output for a URI component:
// spaces become %20 and the marks !'()* stay literal.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent escapes s the way a URI component is escaped.
func EscapeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// FallbackURL returns the placeholder URL shown in place of a failed image.
// It depends only on its arguments.
func FallbackURL(base, text string) string {
	if base == "" {
		base = DefaultPlaceholderBase
	}
	return base + "?text=" + EscapeComponent(text)
}
