package content

import (
	"fmt"
	"strings"
)

// Warning is a data-integrity problem that does not stop the page from
// rendering.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// Check reports references that do not resolve: navigation items without a
// matching section, a call to action pointing nowhere, and sections missing
// an image description.
func Check(doc *Document) []Warning {
	if doc == nil {
		return nil
	}

	var warnings []Warning
	for i, item := range doc.Nav {
		if doc.SectionIndex(item.ID) < 0 {
			warnings = append(warnings, Warning{
				Field:   fmt.Sprintf("nav[%d].id", i),
				Message: fmt.Sprintf("no section with id %q; the item is shown disabled", item.ID),
			})
		}
	}

	if target := strings.TrimPrefix(doc.Hero.CTA.Target, "#"); target != "" && doc.SectionIndex(target) < 0 {
		warnings = append(warnings, Warning{
			Field:   "hero.cta.target",
			Message: fmt.Sprintf("no section with id %q", target),
		})
	}

	for i, section := range doc.Sections {
		if section.Image != "" && section.Alt == "" {
			warnings = append(warnings, Warning{
				Field:   fmt.Sprintf("sections[%d].alt", i),
				Message: "image has no alt text; the viewer will show no caption",
			})
		}
	}

	return warnings
}
