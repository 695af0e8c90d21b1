package export

import (
	"fmt"
	"io"

	"github.com/ajstarks/svgo"
)

// PNGRenderer writes the whole region as one image at RasterScale.
type PNGRenderer struct{}

func (PNGRenderer) Format() Format { return FormatPNG }

func (PNGRenderer) Render(w io.Writer, r *Region) error {
	dc := rasterize(r.Title, r.Lines, regionWidth(r), RasterScale)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SVGRenderer writes the region as SVG text.
type SVGRenderer struct{}

func (SVGRenderer) Format() Format { return FormatSVG }

func (SVGRenderer) Render(w io.Writer, r *Region) error {
	width := int(regionWidth(r))
	height := int(regionHeight(len(r.Lines)))
	pad := int(padPx)
	title := int(titlePx)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", css(colorBackdrop)))
	canvas.Roundrect(pad/2, pad/2, width-pad, title, 8, 8, fmt.Sprintf("fill:%s", css(colorHeaderBG)))
	canvas.Text(pad, pad/2+title/2+5, r.Title,
		fmt.Sprintf("fill:%s;font-size:15px;font-family:monospace;font-weight:bold;white-space:pre", css(colorText)))

	top := pad + title
	for i, l := range r.Lines {
		y := top + i*int(lineHPx) + int(lineHPx)/2 + 4
		canvas.Text(pad, y, l,
			fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace;white-space:pre", css(colorSubtle)))
	}
	canvas.End()
	return nil
}
