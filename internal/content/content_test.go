package content

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reveal/pkg/errors"
)

func TestDefaultDocument(t *testing.T) {
	doc := Default()

	require.Len(t, doc.Sections, 6)
	require.Len(t, doc.Nav, 6)
	for i, item := range doc.Nav {
		assert.Equal(t, item.ID, doc.Sections[i].ID)
	}
	assert.Equal(t, "Atasi Krisis Sampah Plastik", doc.Hero.Title)
	assert.Equal(t, "Pantai Bali", doc.Hero.FallbackText())
	assert.Equal(t, "#permasalahan", doc.Hero.CTA.Target)
	assert.Equal(t, "Bersih", doc.Site.Brand.Accent)
	assert.Empty(t, Check(doc))
}

func TestSectionFallbackDefaultsToAlt(t *testing.T) {
	s := Section{Alt: "Botol plastik di pantai"}
	assert.Equal(t, "Botol plastik di pantai", s.FallbackText())
	s.Fallback = "Botol"
	assert.Equal(t, "Botol", s.FallbackText())
}

func TestLoadYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	doc := Default()

	for _, format := range []Format{FormatYAML, FormatJSON} {
		data, err := Encode(doc, format)
		require.NoError(t, err)

		path := filepath.Join(dir, "content."+string(format))
		require.NoError(t, os.WriteFile(path, data, 0o644))

		loaded, err := Load(path)
		require.NoError(t, err, format)
		assert.Equal(t, doc, loaded, format)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load("content.toml")
	var parseErr *errors.ParseError
	require.True(t, stderrors.As(err, &parseErr))
	assert.Contains(t, err.Error(), "unsupported content format")
}

func TestParseReportsLines(t *testing.T) {
	_, err := Parse("bad.yaml", []byte("site:\n  brand: [\n"), FormatYAML)
	var parseErr *errors.ParseError
	require.True(t, stderrors.As(err, &parseErr))
	assert.Positive(t, parseErr.Line)

	_, err = Parse("bad.json", []byte("{\n  \"sections\": [\n    {,\n"), FormatJSON)
	require.True(t, stderrors.As(err, &parseErr))
	assert.Equal(t, "bad.json", parseErr.Path)
}

func TestJSONLine(t *testing.T) {
	data := []byte("{\n  \"a\": 1,\n  x\n}")
	assert.Equal(t, 3, jsonLine(data, &json.SyntaxError{Offset: 14}))
	assert.Equal(t, 4, jsonLine(data, &json.SyntaxError{Offset: 999}))
	assert.Equal(t, 0, jsonLine(data, stderrors.New("other")))
}

func TestValidate(t *testing.T) {
	valid := func() *Document {
		return &Document{
			Site: Site{Brand: Brand{Name: "Bali"}},
			Hero: Hero{Title: "Hero", CTA: CallToAction{Label: "Go", Target: "#a"}},
			Nav:  []NavItem{{ID: "a", Label: "A"}},
			Sections: []Section{
				{ID: "a", Title: "A", Body: "body"},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Document)
		field  string
	}{
		{"no sections", func(d *Document) { d.Sections = nil }, "sections"},
		{"missing brand", func(d *Document) { d.Site.Brand.Name = "" }, "site.brand.name"},
		{"bad anchor", func(d *Document) { d.Sections[0].ID = "Bad Id" }, "sections[0].id"},
		{"bad cta target", func(d *Document) { d.Hero.CTA.Target = "a" }, "hero.cta.target"},
		{"nav without label", func(d *Document) { d.Nav[0].Label = "" }, "nav[0].label"},
		{"duplicate id", func(d *Document) {
			d.Sections = append(d.Sections, Section{ID: "a", Title: "B", Body: "b"})
		}, "sections[1].id"},
	}

	require.NoError(t, Validate(valid()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := valid()
			tt.mutate(doc)

			err := Validate(doc)
			var valErr *errors.ValidationError
			require.True(t, stderrors.As(err, &valErr), "got %v", err)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}

	assert.Error(t, Validate(nil))
}

func TestCheckWarnings(t *testing.T) {
	doc := &Document{
		Hero: Hero{CTA: CallToAction{Target: "#hilang"}},
		Nav:  []NavItem{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}},
		Sections: []Section{
			{ID: "a", Title: "A", Body: "x", Image: "a.png"},
		},
	}

	warnings := Check(doc)
	require.Len(t, warnings, 3)
	assert.Equal(t, "nav[1].id", warnings[0].Field)
	assert.Equal(t, "hero.cta.target", warnings[1].Field)
	assert.Equal(t, "sections[0].alt", warnings[2].Field)
	assert.Contains(t, warnings[0].String(), `"b"`)
}

func TestSectionLookup(t *testing.T) {
	doc := Default()
	s, ok := doc.SectionByID("ajakan")
	require.True(t, ok)
	assert.Equal(t, "Ajakan untuk Semua", s.Title)
	assert.Equal(t, 5, doc.SectionIndex("ajakan"))
	assert.Equal(t, -1, doc.SectionIndex("tidak-ada"))
}
