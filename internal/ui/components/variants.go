package components

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/pkg/errors"
)

// Kind names the primitive a style is resolved for.
type Kind string

const (
	KindButton Kind = "button"
	KindPanel  Kind = "panel"
	KindCard   Kind = "card"
)

// Variant names the emphasis of a primitive.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantSecondary   Variant = "secondary"
	VariantGhost       Variant = "ghost"
)

// Size names the dimensions of a primitive.
type Size string

const (
	SizeDefault Size = "default"
	SizeSmall   Size = "sm"
	SizeLarge   Size = "lg"
	SizeIcon    Size = "icon"
)

// ColorRole names a palette slot in a serialisable way.
type ColorRole string

const (
	RoleNone        ColorRole = ""
	RolePrimary     ColorRole = "primary"
	RoleDestructive ColorRole = "destructive"
	RoleSecondary   ColorRole = "secondary"
	RoleSurface     ColorRole = "surface"
	RoleText        ColorRole = "text"
	RoleNeutral     ColorRole = "neutral"
	RoleAccent      ColorRole = "accent"
)

// Slot returns the palette slot for the role.
func (r ColorRole) Slot() (PaletteSlot, bool) {
	switch r {
	case RolePrimary:
		return PalettePrimary, true
	case RoleDestructive:
		return PaletteDestructive, true
	case RoleSecondary:
		return PaletteSecondary, true
	case RoleSurface:
		return PaletteSurface, true
	case RoleText:
		return PaletteText, true
	case RoleNeutral:
		return PaletteNeutral, true
	case RoleAccent:
		return PaletteAccent, true
	default:
		return nil, false
	}
}

// Treatment is a state-dependent adjustment layered on a base style.
type Treatment struct {
	Bold       bool
	Underline  bool
	Reverse    bool
	Faint      bool
	BorderRole ColorRole
}

// Apply layers the treatment on style.
func (t Treatment) Apply(style lipgloss.Style, theme Theme) lipgloss.Style {
	if t.Bold {
		style = style.Bold(true)
	}
	if t.Underline {
		style = style.Underline(true)
	}
	if t.Reverse {
		style = style.Reverse(true)
	}
	if t.Faint {
		style = style.Faint(true)
	}
	if slot, ok := t.BorderRole.Slot(); ok {
		style = style.BorderForeground(slot(theme.Palette).Base)
	}
	return style
}

// Emphasis is the colour half of a registered variant.
type Emphasis struct {
	ColorRole  ColorRole
	Filled     bool
	Border     BorderVariant
	BorderRole ColorRole
	Hover      Treatment
	Focus      Treatment
	Disabled   Treatment
}

// Sizing is the dimension half of a registered variant.
type Sizing struct {
	PaddingX SpacingSize
	PaddingY SpacingSize
	Width    int
}

// StyleDescriptor is the fully resolved, comparable style of a primitive.
type StyleDescriptor struct {
	Kind       Kind
	Variant    Variant
	Size       Size
	ColorRole  ColorRole
	Filled     bool
	Bordered   bool
	Border     BorderVariant
	BorderRole ColorRole
	PaddingX   int
	PaddingY   int
	Width      int
	Hover      Treatment
	Focus      Treatment
	Disabled   Treatment
}

// State selects which treatments apply when rendering a descriptor.
type State struct {
	Hovered  bool
	Focused  bool
	Disabled bool
}

// Style converts the descriptor to a lipgloss style in its resting state.
func (d StyleDescriptor) Style(theme Theme) lipgloss.Style {
	style := lipgloss.NewStyle()
	if slot, ok := d.ColorRole.Slot(); ok {
		cs := slot(theme.Palette)
		if d.Filled {
			style = style.Background(cs.Base).Foreground(cs.OnBase)
		} else {
			style = style.Foreground(cs.Base)
		}
	}
	if d.Bordered {
		style = style.Border(BorderForVariant(theme, d.Border))
		if slot, ok := d.BorderRole.Slot(); ok {
			style = style.BorderForeground(slot(theme.Palette).Base)
		}
	}
	style = style.Padding(d.PaddingY, d.PaddingX)
	if d.Width > 0 {
		style = style.Width(d.Width).Align(lipgloss.Center)
	}
	return style
}

// StyleFor converts the descriptor to a style with the state's treatments.
// Disabled wins over hover and focus.
func (d StyleDescriptor) StyleFor(theme Theme, state State) lipgloss.Style {
	style := d.Style(theme)
	if state.Disabled {
		return d.Disabled.Apply(style, theme)
	}
	if state.Focused {
		style = d.Focus.Apply(style, theme)
	}
	if state.Hovered {
		style = d.Hover.Apply(style, theme)
	}
	return style
}

type emphasisKey struct {
	kind    Kind
	variant Variant
}

type sizeKey struct {
	kind Kind
	size Size
}

// VariantRegistry maps (kind, variant) and (kind, size) pairs to style data.
// Themes carry one; lookups never mutate it.
type VariantRegistry struct {
	emphasis map[emphasisKey]Emphasis
	sizes    map[sizeKey]Sizing
	kinds    map[Kind]struct{}
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		emphasis: make(map[emphasisKey]Emphasis),
		sizes:    make(map[sizeKey]Sizing),
		kinds:    make(map[Kind]struct{}),
	}
}

// RegisterEmphasis adds the colour data for a variant of kind.
func (vr *VariantRegistry) RegisterEmphasis(kind Kind, variant Variant, e Emphasis) {
	vr.emphasis[emphasisKey{kind, variant}] = e
	vr.kinds[kind] = struct{}{}
}

// RegisterSize adds the dimension data for a size of kind.
func (vr *VariantRegistry) RegisterSize(kind Kind, size Size, s Sizing) {
	vr.sizes[sizeKey{kind, size}] = s
	vr.kinds[kind] = struct{}{}
}

// Emphasis looks up the colour data for a variant.
func (vr *VariantRegistry) Emphasis(kind Kind, variant Variant) (Emphasis, bool) {
	if vr == nil {
		return Emphasis{}, false
	}
	e, ok := vr.emphasis[emphasisKey{kind, variant}]
	return e, ok
}

// Sizing looks up the dimension data for a size.
func (vr *VariantRegistry) Sizing(kind Kind, size Size) (Sizing, bool) {
	if vr == nil {
		return Sizing{}, false
	}
	s, ok := vr.sizes[sizeKey{kind, size}]
	return s, ok
}

// HasKind reports whether anything is registered for kind.
func (vr *VariantRegistry) HasKind(kind Kind) bool {
	if vr == nil {
		return false
	}
	_, ok := vr.kinds[kind]
	return ok
}

// Variants lists the registered variants of kind in sorted order.
func (vr *VariantRegistry) Variants(kind Kind) []Variant {
	var out []Variant
	if vr == nil {
		return out
	}
	for key := range vr.emphasis {
		if key.kind == kind {
			out = append(out, key.variant)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Sizes lists the registered sizes of kind in sorted order.
func (vr *VariantRegistry) Sizes(kind Kind) []Size {
	var out []Size
	if vr == nil {
		return out
	}
	for key := range vr.sizes {
		if key.kind == kind {
			out = append(out, key.size)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultVariants returns the registry used by the built-in themes.
func DefaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registerButtonVariants(registry)
	registerPanelVariants(registry)
	registerCardVariants(registry)
	return registry
}

func registerButtonVariants(registry *VariantRegistry) {
	hover := Treatment{Bold: true}
	focus := Treatment{Underline: true}
	disabled := Treatment{Faint: true}

	registry.RegisterEmphasis(KindButton, VariantDefault, Emphasis{
		ColorRole: RolePrimary, Filled: true,
		Hover: hover, Focus: focus, Disabled: disabled,
	})
	registry.RegisterEmphasis(KindButton, VariantDestructive, Emphasis{
		ColorRole: RoleDestructive, Filled: true,
		Hover: hover, Focus: focus, Disabled: disabled,
	})
	registry.RegisterEmphasis(KindButton, VariantSecondary, Emphasis{
		ColorRole: RoleSecondary, Filled: true,
		Hover: hover, Focus: focus, Disabled: disabled,
	})
	registry.RegisterEmphasis(KindButton, VariantOutline, Emphasis{
		ColorRole: RoleText, Border: BorderVariantRounded, BorderRole: RoleNeutral,
		Hover:    Treatment{Bold: true, BorderRole: RolePrimary},
		Focus:    Treatment{Underline: true, BorderRole: RolePrimary},
		Disabled: disabled,
	})
	registry.RegisterEmphasis(KindButton, VariantGhost, Emphasis{
		ColorRole: RoleText,
		Hover:     Treatment{Reverse: true},
		Focus:     focus,
		Disabled:  disabled,
	})

	registry.RegisterSize(KindButton, SizeDefault, Sizing{PaddingX: SpacingSizeSmall})
	registry.RegisterSize(KindButton, SizeSmall, Sizing{PaddingX: SpacingSizeExtraSmall})
	registry.RegisterSize(KindButton, SizeLarge, Sizing{PaddingX: SpacingSizeLarge, PaddingY: SpacingSizeExtraSmall})
	registry.RegisterSize(KindButton, SizeIcon, Sizing{Width: 3})
}

func registerPanelVariants(registry *VariantRegistry) {
	registry.RegisterEmphasis(KindPanel, VariantDefault, Emphasis{
		ColorRole: RoleText, Border: BorderVariantNormal, BorderRole: RoleNeutral,
	})
	registry.RegisterEmphasis(KindPanel, VariantSecondary, Emphasis{
		ColorRole: RoleSecondary, Filled: true,
	})
	registry.RegisterEmphasis(KindPanel, VariantOutline, Emphasis{
		ColorRole: RoleText, Border: BorderVariantRounded, BorderRole: RolePrimary,
	})

	registry.RegisterSize(KindPanel, SizeDefault, Sizing{PaddingX: SpacingSizeSmall, PaddingY: SpacingSizeExtraSmall})
	registry.RegisterSize(KindPanel, SizeSmall, Sizing{PaddingX: SpacingSizeExtraSmall})
	registry.RegisterSize(KindPanel, SizeLarge, Sizing{PaddingX: SpacingSizeLarge, PaddingY: SpacingSizeSmall})
}

func registerCardVariants(registry *VariantRegistry) {
	registry.RegisterEmphasis(KindCard, VariantDefault, Emphasis{
		ColorRole: RoleText, Border: BorderVariantRounded, BorderRole: RoleNeutral,
		Focus: Treatment{BorderRole: RolePrimary},
	})
	registry.RegisterEmphasis(KindCard, VariantOutline, Emphasis{
		ColorRole: RoleText, Border: BorderVariantNormal, BorderRole: RoleNeutral,
		Focus: Treatment{BorderRole: RolePrimary},
	})

	registry.RegisterSize(KindCard, SizeDefault, Sizing{PaddingX: SpacingSizeSmall, PaddingY: SpacingSizeExtraSmall})
	registry.RegisterSize(KindCard, SizeSmall, Sizing{PaddingX: SpacingSizeExtraSmall})
}

// Resolver turns (kind, variant, size) into a StyleDescriptor using a theme's
// registry. It holds no mutable state.
type Resolver struct {
	theme Theme
}

// NewResolver creates a resolver for theme.
func NewResolver(theme Theme) Resolver {
	return Resolver{theme: theme.Normalize()}
}

// Resolve returns the descriptor for the combination, or a
// *errors.ConfigurationError naming the first unknown key.
func (r Resolver) Resolve(kind Kind, variant Variant, size Size) (StyleDescriptor, error) {
	registry := r.theme.Variants
	if !registry.HasKind(kind) {
		return StyleDescriptor{}, errors.NewConfigurationError(string(kind), "kind", string(kind), "")
	}
	emphasis, ok := registry.Emphasis(kind, variant)
	if !ok {
		return StyleDescriptor{}, errors.NewConfigurationError(string(kind), "variant", string(variant), "")
	}
	sizing, ok := registry.Sizing(kind, size)
	if !ok {
		return StyleDescriptor{}, errors.NewConfigurationError(string(kind), "size", string(size), "")
	}
	return r.describe(kind, variant, size, emphasis, sizing), nil
}

// ResolveOrDefault never fails: unknown keys are replaced by the default
// variant and size of the same kind, or by the default button for an unknown
// kind. The returned error, if any, records what was replaced.
func (r Resolver) ResolveOrDefault(kind Kind, variant Variant, size Size) (StyleDescriptor, error) {
	registry := r.theme.Variants
	if !registry.HasKind(kind) {
		desc, _ := r.Resolve(KindButton, VariantDefault, SizeDefault)
		return desc, errors.NewConfigurationError(string(kind), "kind", string(kind), string(KindButton))
	}

	var err error
	emphasis, ok := registry.Emphasis(kind, variant)
	if !ok {
		err = errors.NewConfigurationError(string(kind), "variant", string(variant), string(VariantDefault))
		variant = VariantDefault
		emphasis, _ = registry.Emphasis(kind, variant)
	}
	sizing, ok := registry.Sizing(kind, size)
	if !ok {
		if err == nil {
			err = errors.NewConfigurationError(string(kind), "size", string(size), string(SizeDefault))
		}
		size = SizeDefault
		sizing, _ = registry.Sizing(kind, size)
	}
	return r.describe(kind, variant, size, emphasis, sizing), err
}

func (r Resolver) describe(kind Kind, variant Variant, size Size, e Emphasis, s Sizing) StyleDescriptor {
	return StyleDescriptor{
		Kind:       kind,
		Variant:    variant,
		Size:       size,
		ColorRole:  e.ColorRole,
		Filled:     e.Filled,
		Bordered:   e.Border != BorderVariantNone,
		Border:     e.Border,
		BorderRole: e.BorderRole,
		PaddingX:   PaddingValue(r.theme, s.PaddingX),
		PaddingY:   PaddingValue(r.theme, s.PaddingY),
		Width:      s.Width,
		Hover:      e.Hover,
		Focus:      e.Focus,
		Disabled:   e.Disabled,
	}
}
