package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "#2563eb", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#60a5fa", theme.Palette.Primary.Base.Dark)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, 2, theme.Spacing.Padding[SpacingSizeSmall])
	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
	require.NotNil(t, theme.Variants)
}

func TestFixedThemesPinOneSide(t *testing.T) {
	light := LightTheme()
	dark := DarkTheme()

	assert.Equal(t, light.Palette.Surface.Base.Light, light.Palette.Surface.Base.Dark)
	assert.Equal(t, dark.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Dark)
	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light)
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "", want: "default"},
		{name: "light", want: "light"},
		{name: "DARK", want: "dark"},
		{name: "neon", want: "default", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := ThemeByName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, theme.Name)
		})
	}
}

func TestNormalizeFillsMissingFields(t *testing.T) {
	theme := Theme{}.Normalize()

	assert.Equal(t, 1, PaddingValue(theme, SpacingSizeExtraSmall))
	assert.Equal(t, 0, PaddingValue(theme, SpacingSize(42)))
	assert.True(t, theme.Variants.HasKind(KindButton))
}

func TestModifiersCompose(t *testing.T) {
	theme := LightTheme()
	style := Chain(
		Background(PalettePrimary),
		PaddingX(SpacingSizeSmall),
		nil,
		Border(BorderVariantRounded),
	)(lipgloss.NewStyle(), theme)

	assert.Equal(t, theme.Palette.Primary.Base, style.GetBackground())
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
	assert.Equal(t, lipgloss.RoundedBorder(), style.GetBorderStyle())
}

func TestAppliersLayerOverRawStyle(t *testing.T) {
	base := NewBaseComponent()
	base.SetStyle(lipgloss.NewStyle().Bold(true))
	base.SetAppliers(PaddingX(SpacingSizeExtraSmall))
	base.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.PaddingLeft(s.GetPaddingLeft() + 1)
	})

	style := base.ComputeStyle(DefaultTheme())
	assert.True(t, style.GetBold())
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 1, style.GetPaddingRight())

	base.SetAppliers()
	assert.Equal(t, 0, base.ComputeStyle(DefaultTheme()).GetPaddingLeft())
}
