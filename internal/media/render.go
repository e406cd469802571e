package media

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"
)

// Fit controls how an image is scaled into a cell block.
type Fit int

const (
	// FitCover fills the block and crops the overflow.
	FitCover Fit = iota
	// FitContain shows the whole image and leaves the rest blank.
	FitContain
)

// Mode selects the cell encoding.
type Mode int

const (
	// ModeTrueColor draws two pixels per cell with the upper half block,
	// foreground for the top pixel and background for the bottom one.
	ModeTrueColor Mode = iota
	// ModeASCII draws one luminance character per cell without escapes.
	ModeASCII
)

// RenderOptions configures Render.
type RenderOptions struct {
	Fit  Fit
	Mode Mode
}

const upperHalf = "▀"

var asciiRamp = []byte(" .:-=+*#%@")

// Render draws img into a width x height block of terminal cells.
func Render(img image.Image, width, height int, opts RenderOptions) string {
	if img == nil || width <= 0 || height <= 0 {
		return RenderPlaceholder(width, height, "")
	}

	rows := height
	if opts.Mode == ModeTrueColor {
		rows = height * 2
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, rows))
	draw.ApproxBiLinear.Scale(dst, fitRect(img.Bounds(), dst.Bounds(), opts.Fit), img, img.Bounds(), draw.Over, nil)

	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		if opts.Mode == ModeASCII {
			for x := 0; x < width; x++ {
				b.WriteByte(asciiCell(dst.RGBAAt(x, y)))
			}
			continue
		}
		for x := 0; x < width; x++ {
			writeHalfBlock(&b, dst.RGBAAt(x, 2*y), dst.RGBAAt(x, 2*y+1))
		}
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// fitRect returns where src lands inside dst for the given fit.
func fitRect(src, dst image.Rectangle, fit Fit) image.Rectangle {
	sw, sh := float64(src.Dx()), float64(src.Dy())
	dw, dh := float64(dst.Dx()), float64(dst.Dy())
	if sw == 0 || sh == 0 {
		return dst
	}
	scale := max(dw/sw, dh/sh)
	if fit == FitContain {
		scale = min(dw/sw, dh/sh)
	}
	w := int(sw*scale + 0.5)
	h := int(sh*scale + 0.5)
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func writeHalfBlock(b *strings.Builder, top, bottom color.RGBA) {
	switch {
	case top.A == 0 && bottom.A == 0:
		b.WriteString("\x1b[0m ")
	case bottom.A == 0:
		fmt.Fprintf(b, "\x1b[0;38;2;%d;%d;%dm%s", top.R, top.G, top.B, upperHalf)
	case top.A == 0:
		fmt.Fprintf(b, "\x1b[0;38;2;%d;%d;%dm▄", bottom.R, bottom.G, bottom.B)
	default:
		fmt.Fprintf(b, "\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm%s",
			top.R, top.G, top.B, bottom.R, bottom.G, bottom.B, upperHalf)
	}
}

func asciiCell(c color.RGBA) byte {
	if c.A == 0 {
		return ' '
	}
	// Rec. 601 luma; darker pixels get denser glyphs.
	luma := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	index := (255 - luma) * (len(asciiRamp) - 1) / 255
	return asciiRamp[index]
}

// RenderPlaceholder draws a framed block with label centred in it. Blocks
// too small for a frame show the label alone.
func RenderPlaceholder(width, height int, label string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 3 || height < 3 {
		line := runewidth.FillRight(runewidth.Truncate(label, width, ""), width)
		rows := make([]string, height)
		for i := range rows {
			rows[i] = strings.Repeat(" ", width)
		}
		rows[height/2] = line
		return strings.Join(rows, "\n")
	}

	inner := width - 2
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Faint(true).
		Width(inner).
		Height(height - 2).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(runewidth.Truncate(label, inner, "…"))
}
