package layout

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/dksylla/ecoledoc/internal/assets"
)

const fontFamily = "Helvetica"

// FontVariant selects one of the embedded base font faces.
type FontVariant int

const (
	Regular FontVariant = iota
	Bold
	Italic
	BoldItalic
)

func (v FontVariant) style() string {
	switch v {
	case Bold:
		return "B"
	case Italic:
		return "I"
	case BoldItalic:
		return "BI"
	}
	return ""
}

type RGB struct {
	R, G, B int
}

var (
	Black = RGB{0, 0, 0}
	Red   = RGB{192, 32, 32}
	Gray  = RGB{235, 235, 235}
)

// Page wraps a single fixed-size A4 portrait page in point units. The
// primitives are stateless with respect to vertical flow: builders decide
// every y position through an explicit Cursor. There is no pagination; content
// drawn past the page bottom clips.
type Page struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	images int
}

func NewPage() *Page {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &Page{
		pdf: pdf,
		// the base fonts are cp1252; accented French text must be mapped
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (p *Page) Width() float64 {
	w, _ := p.pdf.GetPageSize()
	return w
}

func (p *Page) Height() float64 {
	_, h := p.pdf.GetPageSize()
	return h
}

// MeasureText returns the exact width of s in points for the given face and
// size, using the embedded font metrics.
func (p *Page) MeasureText(s string, v FontVariant, size float64) float64 {
	p.pdf.SetFont(fontFamily, v.style(), size)
	return p.pdf.GetStringWidth(p.tr(s))
}

// DrawText places a single text run with its baseline at y. No wrapping.
func (p *Page) DrawText(s string, x, y float64, v FontVariant, size float64) {
	p.DrawColoredText(s, x, y, v, size, Black)
}

func (p *Page) DrawColoredText(s string, x, y float64, v FontVariant, size float64, color RGB) {
	p.pdf.SetFont(fontFamily, v.style(), size)
	p.pdf.SetTextColor(color.R, color.G, color.B)
	p.pdf.Text(x, y, p.tr(s))
}

// DrawCenteredText centers s horizontally on the page at baseline y and
// returns the x it resolved to.
func (p *Page) DrawCenteredText(s string, y float64, v FontVariant, size float64) float64 {
	x := (p.Width() - p.MeasureText(s, v, size)) / 2
	p.DrawText(s, x, y, v, size)
	return x
}

// DrawWrappedText greedily wraps s against maxWidth, emitting one line per
// overflow, and returns the cursor under the last line drawn.
func (p *Page) DrawWrappedText(s string, cur Cursor, maxWidth, lineHeight float64, v FontVariant, size float64) Cursor {
	var line string
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line == "" || p.MeasureText(candidate, v, size) <= maxWidth {
			line = candidate
			continue
		}
		p.DrawText(line, cur.X, cur.Y, v, size)
		cur = cur.Down(lineHeight)
		line = word
	}
	if line != "" {
		p.DrawText(line, cur.X, cur.Y, v, size)
		cur = cur.Down(lineHeight)
	}
	return cur
}

func (p *Page) DrawLine(x1, y1, x2, y2 float64) {
	p.pdf.SetDrawColor(Black.R, Black.G, Black.B)
	p.pdf.SetLineWidth(0.8)
	p.pdf.Line(x1, y1, x2, y2)
}

// DrawRect draws a border-only box, or a filled one when fill is non-nil.
func (p *Page) DrawRect(x, y, w, h float64, fill *RGB) {
	p.pdf.SetDrawColor(Black.R, Black.G, Black.B)
	p.pdf.SetLineWidth(0.8)
	if fill != nil {
		p.pdf.SetFillColor(fill.R, fill.G, fill.B)
		p.pdf.Rect(x, y, w, h, "FD")
		return
	}
	p.pdf.Rect(x, y, w, h, "D")
}

// DrawImage embeds the asset at fixed dimensions, ignoring the source aspect
// ratio. A malformed payload poisons the page; the error surfaces from
// Bytes.
func (p *Page) DrawImage(a *assets.Asset, x, y, w, h float64) {
	if a == nil || len(a.Bytes) == 0 {
		return
	}
	p.images++
	name := fmt.Sprintf("img%d", p.images)
	opt := gofpdf.ImageOptions{ImageType: imageType(a.Format)}
	p.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(a.Bytes))
	p.pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
}

func imageType(f assets.Format) string {
	if f == assets.PNG {
		return "PNG"
	}
	return "JPG"
}

// Bytes serializes the page. Any error accumulated by earlier draw calls is
// reported here.
func (p *Page) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
