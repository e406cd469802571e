package components

// IconProvider maps symbolic icon references to terminal glyphs.
type IconProvider interface {
	Icon(ref string) string
}

// FallbackIcon is rendered for references the provider does not know.
const FallbackIcon = "•"

// GlyphIcons is an IconProvider backed by a fixed table.
type GlyphIcons map[string]string

// Icon returns the glyph for ref or FallbackIcon.
func (g GlyphIcons) Icon(ref string) string {
	if glyph, ok := g[ref]; ok {
		return glyph
	}
	return FallbackIcon
}

// DefaultIcons returns the glyph table used by the page.
func DefaultIcons() GlyphIcons {
	return GlyphIcons{
		"wind":            "≋",
		"trash":           "♻",
		"trash-2":         "♻",
		"alert-triangle":  "⚠",
		"shield-check":    "⛨",
		"list-checks":     "☑",
		"heart-handshake": "♥",
		"zoom-in":         "⊕",
		"menu":            "☰",
		"x":               "✕",
	}
}
