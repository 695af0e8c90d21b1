package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sync"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Renderer turns a captured region into a document.
type Renderer interface {
	Format() Format
	Render(w io.Writer, r *Region) error
}

// RendererFor returns the built-in renderer for f.
func RendererFor(f Format) (Renderer, error) {
	switch f {
	case FormatPDF:
		return PDFRenderer{}, nil
	case FormatPNG:
		return PNGRenderer{}, nil
	case FormatSVG:
		return SVGRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
}

// Layout metrics in unscaled pixels.
const (
	padPx      = 24.0
	titlePx    = 40.0
	lineHPx    = 18.0
	charWPx    = 7.2
	minWidthPx = 595.0
	bodyPt     = 12.0
	titlePt    = 15.0
)

var (
	colorBackdrop = color.RGBA{0xf9, 0xfa, 0xfb, 0xff}
	colorHeaderBG = color.RGBA{0xed, 0xe9, 0xfe, 0xff}
	colorText     = color.RGBA{0x11, 0x11, 0x11, 0xff}
	colorSubtle   = color.RGBA{0x37, 0x41, 0x51, 0xff}
)

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func regionWidth(r *Region) float64 {
	w := 2*padPx + float64(r.maxCells())*charWPx
	return math.Ceil(math.Max(w, minWidthPx))
}

func regionHeight(lines int) float64 {
	return 2*padPx + titlePx + float64(lines)*lineHPx
}

var monoFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomono.TTF)
})

// monoFace returns Go Mono at size points, or the fixed bitmap face when
// the embedded font cannot be loaded.
func monoFace(size float64) font.Face {
	f, err := monoFont()
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// rasterize draws title and lines into a context width unscaled pixels
// wide, multiplied by scale.
func rasterize(title string, lines []string, width, scale float64) *gg.Context {
	height := regionHeight(len(lines))
	dc := gg.NewContext(int(math.Ceil(width*scale)), int(math.Ceil(height*scale)))
	dc.SetColor(colorBackdrop)
	dc.Clear()

	dc.SetColor(colorHeaderBG)
	dc.DrawRoundedRectangle(padPx/2*scale, padPx/2*scale, (width-padPx)*scale, titlePx*scale, 8*scale)
	dc.Fill()

	dc.SetFontFace(monoFace(titlePt * scale))
	dc.SetColor(colorText)
	dc.DrawStringAnchored(title, padPx*scale, (padPx/2+titlePx/2)*scale, 0, 0.5)

	dc.SetFontFace(monoFace(bodyPt * scale))
	dc.SetColor(colorSubtle)
	top := padPx + titlePx
	for i, l := range lines {
		y := top + float64(i)*lineHPx + lineHPx/2
		dc.DrawStringAnchored(l, padPx*scale, y*scale, 0, 0.5)
	}
	return dc
}
