// Package ogimage renders 1200x630 Open Graph cards for topic pages.
package ogimage

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 1200
	Height = 630

	margin        = 80
	maxTitleLines = 3
	maxSubLines   = 2
	ellipsis      = "…"
)

var (
	bgTop    = color.RGBA{R: 0x0b, G: 0x10, B: 0x20, A: 0xff}
	bgBottom = color.RGBA{R: 0x1a, G: 0x23, B: 0x4a, A: 0xff}
	accent   = color.RGBA{R: 0x6e, G: 0x8b, B: 0xff, A: 0xff}
	textMain = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	textDim  = color.RGBA{R: 0xb4, G: 0xbc, B: 0xd6, A: 0xff}
)

// Card is the text placed on an image.
type Card struct {
	Title    string
	Subtitle string
	Label    string
}

// Renderer draws cards. Parsed fonts are shared; faces are built per call since they hold caches.
type Renderer struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewRenderer parses the embedded Go fonts.
func NewRenderer() (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Renderer{regular: regular, bold: bold}, nil
}

// Render writes c as a PNG to w.
func (r *Renderer) Render(w io.Writer, c Card) error {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	paintBackground(img)

	brand, err := newFace(r.bold, 28)
	if err != nil {
		return err
	}
	defer brand.Close()
	title, err := newFace(r.bold, 64)
	if err != nil {
		return err
	}
	defer title.Close()
	sub, err := newFace(r.regular, 32)
	if err != nil {
		return err
	}
	defer sub.Close()

	maxWidth := Width - 2*margin

	y := margin + 28
	drawText(img, brand, accent, margin, y, "STEREOS")
	if c.Label != "" {
		label := strings.ToUpper(c.Label)
		lw := font.MeasureString(brand, label).Ceil()
		drawText(img, brand, textDim, Width-margin-lw, y, label)
	}

	y = 260
	for _, line := range Wrap(title, c.Title, maxWidth, maxTitleLines) {
		drawText(img, title, textMain, margin, y, line)
		y += 78
	}

	y += 12
	for _, line := range Wrap(sub, c.Subtitle, maxWidth, maxSubLines) {
		drawText(img, sub, textDim, margin, y, line)
		y += 44
	}

	draw.Draw(img, image.Rect(margin, Height-margin, margin+160, Height-margin+8), image.NewUniform(accent), image.Point{}, draw.Src)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create %.0fpt face: %w", size, err)
	}
	return face, nil
}

func paintBackground(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y) / float64(b.Dy()-1)
		row := color.RGBA{
			R: lerp(bgTop.R, bgBottom.R, t),
			G: lerp(bgTop.G, bgBottom.G, t),
			B: lerp(bgTop.B, bgBottom.B, t),
			A: 0xff,
		}
		draw.Draw(img, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(row), image.Point{}, draw.Src)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func drawText(dst draw.Image, face font.Face, c color.Color, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Wrap breaks text into at most maxLines lines no wider than maxWidth pixels.
// Overflowing text is cut at the last line and ends with an ellipsis.
// A single word wider than maxWidth is broken by rune.
func Wrap(face font.Face, text string, maxWidth, maxLines int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || maxLines <= 0 {
		return nil
	}

	fits := func(s string) bool { return font.MeasureString(face, s).Ceil() <= maxWidth }

	var lines []string
	cur := ""
	for len(words) > 0 {
		next := words[0]
		if cur != "" {
			next = cur + " " + words[0]
		}
		if fits(next) {
			cur = next
			words = words[1:]
			continue
		}
		if cur == "" {
			head, tail := splitToFit(words[0], fits)
			cur = head
			if tail == "" {
				words = words[1:]
			} else {
				words[0] = tail
			}
		}
		lines = append(lines, cur)
		cur = ""
		if len(lines) == maxLines {
			if len(words) > 0 {
				lines[maxLines-1] = ellipsize(lines[maxLines-1], fits)
			}
			return lines
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func splitToFit(word string, fits func(string) bool) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && fits(string(runes[:n+1])) {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

func ellipsize(line string, fits func(string) bool) string {
	runes := []rune(strings.TrimSpace(line))
	for len(runes) > 0 && !fits(string(runes)+ellipsis) {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + ellipsis
}
