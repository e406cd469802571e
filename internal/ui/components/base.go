package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// BaseComponent carries the pieces every primitive shares: a raw style, the
// theme-aware appliers layered on top of it, and the handle it measures into.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
	handle   *ui.Handle
}

// StyleFunc transforms a style using values from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Chain folds funcs into a single StyleFunc applied left to right.
func Chain(funcs ...StyleFunc) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		for _, fn := range funcs {
			if fn != nil {
				s = fn(s, theme)
			}
		}
		return s
	}
}

// NewBaseComponent returns a component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle applies the component's appliers to its raw style.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return b.decorate(b.style, theme)
}

// decorate applies the component's appliers to an externally built style,
// such as one produced from a StyleDescriptor.
func (b *BaseComponent) decorate(s lipgloss.Style, theme Theme) lipgloss.Style {
	return Chain(b.appliers...)(s, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends appliers after the existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	b.appliers = append(b.appliers, appliers...)
}

// SetHandle attaches an explicit handle the component measures into.
func (b *BaseComponent) SetHandle(h *ui.Handle) {
	b.handle = h
}

// measured records the rendered size into the handle and returns rendered.
func (b *BaseComponent) measured(rendered string) string {
	b.handle.Measure(rendered)
	return rendered
}

// Spacing is padding or margin in cells, clockwise from the top.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// SymmetricSpacing uses vertical for top and bottom and horizontal for the
// sides.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Constraints limit the width a component may use. A MaxWidth of zero or
// less means unlimited.
type Constraints struct {
	MaxWidth int
}

// Unconstrained returns constraints with no limit.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// RenderContext provides layout information and theme to components during rendering.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
	// Report receives non-fatal problems found while rendering, such as an
	// unknown variant that fell back to the default.
	Report func(error)
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithReport returns a new context that reports problems to fn.
func (r RenderContext) WithReport(fn func(error)) RenderContext {
	r.Report = fn
	return r
}

// InnerWidth is the width children may use, or 0 if unknown.
func (r RenderContext) InnerWidth() int {
	if r.Constraints.MaxWidth > 0 {
		return r.Constraints.MaxWidth
	}
	return r.ParentWidth
}

func (r RenderContext) report(err error) {
	if err != nil && r.Report != nil {
		r.Report(err)
	}
}

// resolve looks up a descriptor, reporting and degrading on unknown keys.
func (r RenderContext) resolve(kind Kind, variant Variant, size Size) StyleDescriptor {
	desc, err := NewResolver(r.Theme).ResolveOrDefault(kind, variant, size)
	r.report(err)
	return desc
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// render renders child with ctx when it accepts a context.
func render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
