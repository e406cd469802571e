package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCaption
	TypographyVariantEmphasis
	TypographyVariantMuted
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

func (b BorderVariant) String() string {
	switch b {
	case BorderVariantNormal:
		return "normal"
	case BorderVariantRounded:
		return "rounded"
	case BorderVariantThick:
		return "thick"
	default:
		return "none"
	}
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary     ColourSet
	Destructive ColourSet
	Secondary   ColourSet
	Surface     ColourSet
	Text        ColourSet
	Neutral     ColourSet
	Accent      ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Caption  lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// Theme represents an immutable styling theme for components.
// Themes should be created once and reused.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Normalize returns a new theme with all fields properly initialized.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	if t.Variants == nil {
		t.Variants = DefaultVariants()
	}
	return t
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

// Terminal cells are coarse, so the scale grows by one cell per step.
func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
		SpacingSizeExtraLarge: 6,
	}
}

type colourMode int

const (
	modeAdaptive colourMode = iota
	modeLight
	modeDark
)

// DefaultTheme returns a theme that adapts to the terminal background.
func DefaultTheme() Theme {
	return buildTheme("default", modeAdaptive)
}

// LightTheme returns a theme with fixed light-background colours.
func LightTheme() Theme {
	return buildTheme("light", modeLight)
}

// DarkTheme returns a theme with fixed dark-background colours.
func DarkTheme() Theme {
	return buildTheme("dark", modeDark)
}

// ThemeByName resolves a theme name. An empty name selects DefaultTheme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "auto":
		return DefaultTheme(), nil
	case "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return DefaultTheme(), fmt.Errorf("unknown theme %q", name)
	}
}

func buildTheme(name string, mode colourMode) Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		switch mode {
		case modeLight:
			return lipgloss.AdaptiveColor{Light: light, Dark: light}
		case modeDark:
			return lipgloss.AdaptiveColor{Light: dark, Dark: dark}
		default:
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#2563eb", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#1d4ed8", "#3b82f6"),
			Contrast: ac("#facc15", "#fde047"),
		},
		Destructive: ColourSet{
			Base:     ac("#dc2626", "#f87171"),
			OnBase:   ac("#fef2f2", "#1f0a0a"),
			Muted:    ac("#b91c1c", "#ef4444"),
			Contrast: ac("#fde68a", "#fde68a"),
		},
		Secondary: ColourSet{
			Base:     ac("#e5e7eb", "#374151"),
			OnBase:   ac("#111827", "#f3f4f6"),
			Muted:    ac("#d1d5db", "#4b5563"),
			Contrast: ac("#2563eb", "#93c5fd"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#111827"),
			OnBase:   ac("#1f2937", "#e5e7eb"),
			Muted:    ac("#f3f4f6", "#1f2937"),
			Contrast: ac("#2563eb", "#60a5fa"),
		},
		Text: ColourSet{
			Base:     ac("#374151", "#d1d5db"),
			OnBase:   ac("#ffffff", "#111827"),
			Muted:    ac("#6b7280", "#9ca3af"),
			Contrast: ac("#111827", "#f9fafb"),
		},
		Neutral: ColourSet{
			Base:     ac("#d1d5db", "#4b5563"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e5e7eb", "#374151"),
			Contrast: ac("#6b7280", "#9ca3af"),
		},
		Accent: ColourSet{
			Base:     ac("#16a34a", "#4ade80"),
			OnBase:   ac("#f0fdf4", "#052e16"),
			Muted:    ac("#15803d", "#22c55e"),
			Contrast: ac("#0ea5e9", "#38bdf8"),
		},
	}

	theme := Theme{
		Name:    name,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Spacing: SpacingConfig{
			Margin:  defaultSpacingTable(),
			Padding: defaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
		Variants:   DefaultVariants(),
	}
	return theme.Normalize()
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Text.Base)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Text.Contrast),
		Subtitle: base.Foreground(p.Text.Muted),
		Body:     base,
		Caption:  base.Foreground(p.Text.Muted).Italic(true),
		Emphasis: base.Bold(true).Foreground(p.Accent.Base),
		Muted:    base.Foreground(p.Text.Muted).Faint(true),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		return 0
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	t := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return t.Title
	case TypographyVariantSubtitle:
		return t.Subtitle
	case TypographyVariantBody:
		return t.Body
	case TypographyVariantCaption:
		return t.Caption
	case TypographyVariantEmphasis:
		return t.Emphasis
	case TypographyVariantMuted:
		return t.Muted
	default:
		return t.Base
	}
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: the fill or brand color
//   - OnBase: text color that contrasts with Base
//   - Muted: a quieter variant of Base
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary     PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteDestructive PaletteSlot = func(p Palette) ColourSet { return p.Destructive }
	PaletteSecondary   PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface     PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteText        PaletteSlot = func(p Palette) ColourSet { return p.Text }
	PaletteNeutral     PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteAccent      PaletteSlot = func(p Palette) ColourSet { return p.Accent }
)

// Background applies a semantic background colour and matching foreground for optimal contrast.
//
// Example:
//
//	panel := NewPanel().WithAppliers(Background(PaletteSurface))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColor tints the border with a palette slot.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(MarginValue(theme, size))
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
