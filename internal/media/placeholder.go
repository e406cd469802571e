package media

import (
	"context"
	stderrors "errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"net/url"
	"strconv"
	"strings"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/alexisbeaulieu97/reveal/pkg/errors"
)

// PlaceholderSpec is the parsed form of a placeholder-service URL such as
// https://placehold.co/800x600/E0E0E0/707070?text=Pantai%20Bali.
type PlaceholderSpec struct {
	Width      int
	Height     int
	Background color.RGBA
	Foreground color.RGBA
	Text       string
}

var (
	defaultPlaceholderBG = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	defaultPlaceholderFG = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xFF}
)

// ParsePlaceholder decodes a placeholder URL. Missing colours use the
// service defaults and missing text shows the dimensions.
func ParsePlaceholder(src string) (PlaceholderSpec, error) {
	u, err := url.Parse(src)
	if err != nil {
		return PlaceholderSpec{}, err
	}

	spec := PlaceholderSpec{
		Width:      800,
		Height:     600,
		Background: defaultPlaceholderBG,
		Foreground: defaultPlaceholderFG,
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) > 0 && parts[0] != "" {
		w, h, err := parseDimensions(parts[0])
		if err != nil {
			return PlaceholderSpec{}, err
		}
		spec.Width, spec.Height = w, h
	}
	if len(parts) > 1 {
		if spec.Background, err = parseHex(parts[1]); err != nil {
			return PlaceholderSpec{}, err
		}
	}
	if len(parts) > 2 {
		if spec.Foreground, err = parseHex(parts[2]); err != nil {
			return PlaceholderSpec{}, err
		}
	}

	spec.Text = u.Query().Get("text")
	if spec.Text == "" {
		spec.Text = fmt.Sprintf("%d×%d", spec.Width, spec.Height)
	}
	return spec, nil
}

// maxPlaceholderSide caps each requested dimension before any scaling.
const maxPlaceholderSide = 10000

func parseDimensions(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		w, h = s, s
	}
	width, err := parseSide(w)
	if err != nil {
		return 0, 0, err
	}
	height, err := parseSide(h)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func parseSide(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if stderrors.As(err, &numErr) && stderrors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: placeholder side %q", ErrImageTooLarge, s)
		}
		return 0, fmt.Errorf("invalid placeholder size %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid placeholder size %q", s)
	}
	if n > maxPlaceholderSide {
		return 0, fmt.Errorf("%w: placeholder side %d", ErrImageTooLarge, n)
	}
	return n, nil
}

func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid placeholder colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid placeholder colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// PlaceholderLoader synthesizes placeholder-service images locally instead
// of fetching them.
type PlaceholderLoader struct {
	Base string
	// MaxWidth and MaxHeight bound the synthesized image in pixels. The
	// requested size is scaled down to fit, keeping its aspect. Zero means 200.
	MaxWidth  int
	MaxHeight int
}

// Accepts reports whether src points at the placeholder service host.
func (p PlaceholderLoader) Accepts(src string) bool {
	base := p.Base
	if base == "" {
		base = DefaultPlaceholderBase
	}
	b, err := url.Parse(base)
	if err != nil {
		return false
	}
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return u.Host != "" && u.Host == b.Host
}

// Load draws the placeholder with its background, foreground and text.
func (p PlaceholderLoader) Load(ctx context.Context, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewImageError(src, err)
	}
	spec, err := ParsePlaceholder(src)
	if err != nil {
		return nil, errors.NewImageError(src, err)
	}

	w, h := fitBox(spec.Width, spec.Height, orDefault(p.MaxWidth, 200), orDefault(p.MaxHeight, 200))

	dc := gg.NewContext(w, h)
	dc.SetColor(spec.Background)
	dc.Clear()
	dc.SetColor(spec.Foreground)
	dc.SetFontFace(basicfont.Face7x13)
	dc.DrawStringAnchored(spec.Text, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return dc.Image(), nil
}

// fitBox scales w×h down into maxW×maxH. Sizes that already fit are kept.
func fitBox(w, h, maxW, maxH int) (int, int) {
	scale := min(1, float64(maxW)/float64(w), float64(maxH)/float64(h))
	return max(int(math.Round(float64(w)*scale)), 1), max(int(math.Round(float64(h)*scale)), 1)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
