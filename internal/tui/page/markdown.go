package page

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
)

var emphasisMarkers = strings.NewReplacer("**", "", "__", "")

// bodyRenderer renders section bodies as Markdown, keeping one glamour
// renderer per wrap width.
type bodyRenderer struct {
	enabled   bool
	style     string
	renderers map[int]*glamour.TermRenderer
	cache     map[bodyKey]string
}

type bodyKey struct {
	text  string
	width int
}

func newBodyRenderer(enabled bool, style string) *bodyRenderer {
	if style == "" {
		style = "notty"
	}
	return &bodyRenderer{
		enabled:   enabled,
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[bodyKey]string),
	}
}

// Render returns text wrapped to width. With Markdown off, or when glamour
// fails, emphasis markers are dropped and the text is wrapped plainly.
func (b *bodyRenderer) Render(ctx components.RenderContext, text string) string {
	width := ctx.InnerWidth()
	if !b.enabled || width <= 0 {
		return components.BodyText(emphasisMarkers.Replace(text)).ViewWithContext(ctx)
	}

	key := bodyKey{text: text, width: width}
	if out, ok := b.cache[key]; ok {
		return out
	}

	out, err := b.markdown(text, width)
	if err != nil {
		return components.BodyText(emphasisMarkers.Replace(text)).ViewWithContext(ctx)
	}
	b.cache[key] = out
	return out
}

func (b *bodyRenderer) markdown(text string, width int) (string, error) {
	renderer, ok := b.renderers[width]
	if !ok {
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(b.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		b.renderers[width] = renderer
	}

	out, err := renderer.Render(text)
	if err != nil {
		return "", err
	}

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(strings.TrimRight(line, " "), width, "")
	}
	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n"), nil
}

func blank(line string) bool {
	return strings.TrimSpace(ansi.Strip(line)) == ""
}

// markdownBody is a section body in the component tree.
type markdownBody struct {
	text     string
	renderer *bodyRenderer
}

func (m markdownBody) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

func (m markdownBody) ViewWithContext(ctx components.RenderContext) string {
	return m.renderer.Render(ctx, m.text)
}
