// Package components provides the theme-aware primitives the campaign page is
// built from.
//
// # Overview
//
// Components render to strings with lipgloss. Themes are immutable values
// passed explicitly through RenderContext, so the same component rendered
// with the same context always produces the same output.
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// # Variants
//
// Button, Card and Panel do not hard-code their look. Each one asks a
// Resolver for the StyleDescriptor of its (kind, variant, size) triple:
//
//	desc, err := components.NewResolver(theme).Resolve(
//		components.KindButton, components.VariantGhost, components.SizeSmall)
//
// Resolve reports unknown keys as *errors.ConfigurationError. Components use
// ResolveOrDefault instead, render the default descriptor and pass the error
// to RenderContext.Report.
//
// # Attachment handles
//
// Every primitive accepts a *ui.Handle through WithHandle and records its
// rendered size into it. The page places the node and records its position,
// which lets visibility tracking observe the node without reaching into the
// rendered output.
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	panel := NewPanel().WithAppliers(
//		Background(PaletteSurface),
//		PaddingX(SpacingSizeSmall),
//	)
//
//   - Background(slot): semantic background color with matching foreground
//   - Foreground(slot): semantic text color
//   - Border(variant), BorderColor(slot): border from theme
//   - Padding/PaddingX/PaddingY(size), Margin/MarginX/MarginY(size)
//   - Typography(variant): typography preset from theme
package components
