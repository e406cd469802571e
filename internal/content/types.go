// Package content holds the campaign document rendered by the page: the
// site chrome, the hero, the navigation and the ordered sections.
package content

// Document is the complete page content.
type Document struct {
	Site     Site      `yaml:"site" json:"site"`
	Hero     Hero      `yaml:"hero" json:"hero"`
	Nav      []NavItem `yaml:"nav" json:"nav" validate:"dive"`
	Sections []Section `yaml:"sections" json:"sections" validate:"required,min=1,dive"`
}

// Site holds the text around the sections.
type Site struct {
	Brand  Brand  `yaml:"brand" json:"brand"`
	Intro  Intro  `yaml:"intro" json:"intro"`
	Footer Footer `yaml:"footer" json:"footer"`
}

// Brand is the wordmark, drawn as Name followed by Accent in the accent colour.
type Brand struct {
	Name   string `yaml:"name" json:"name" validate:"required"`
	Accent string `yaml:"accent" json:"accent"`
}

// Intro is the heading block above the sections.
type Intro struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

// Footer is the closing block.
type Footer struct {
	Tagline string `yaml:"tagline" json:"tagline"`
	Notice  string `yaml:"notice" json:"notice"`
}

// Hero is the banner at the top of the page.
type Hero struct {
	Title    string       `yaml:"title" json:"title" validate:"required"`
	Subtitle string       `yaml:"subtitle" json:"subtitle"`
	Image    string       `yaml:"image" json:"image"`
	Alt      string       `yaml:"alt" json:"alt"`
	Fallback string       `yaml:"fallback" json:"fallback"`
	CTA      CallToAction `yaml:"cta" json:"cta"`
}

// FallbackText is the placeholder text used when the hero image fails.
func (h Hero) FallbackText() string {
	if h.Fallback != "" {
		return h.Fallback
	}
	return h.Alt
}

// CallToAction is the hero button. Target is an in-page anchor such as
// "#permasalahan".
type CallToAction struct {
	Label  string `yaml:"label" json:"label" validate:"required_with=Target"`
	Target string `yaml:"target" json:"target" validate:"omitempty,anchor_ref"`
}

// NavItem is a navigation entry. ID should name a section.
type NavItem struct {
	ID    string `yaml:"id" json:"id" validate:"required,anchor"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

// Section is one content card. ID doubles as its anchor.
type Section struct {
	ID       string `yaml:"id" json:"id" validate:"required,anchor"`
	Title    string `yaml:"title" json:"title" validate:"required"`
	Body     string `yaml:"body" json:"body" validate:"required"`
	Image    string `yaml:"image" json:"image"`
	Alt      string `yaml:"alt" json:"alt"`
	Fallback string `yaml:"fallback" json:"fallback"`
	Icon     string `yaml:"icon" json:"icon"`
}

// FallbackText is the placeholder text used when the section image fails.
// It defaults to the alt text.
func (s Section) FallbackText() string {
	if s.Fallback != "" {
		return s.Fallback
	}
	return s.Alt
}

// SectionByID returns the section with id.
func (d *Document) SectionByID(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIndex returns the position of the section with id, or -1.
func (d *Document) SectionIndex(id string) int {
	for i, s := range d.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
