package export

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/go-pdf/fpdf"
)

// PDF page layout.
const (
	PageSize    = "A4"
	Orientation = "P"
	MarginMM    = 10.0
	RasterScale = 2.0
)

// PDFRenderer rasterizes the region at RasterScale and places it on A4
// portrait pages inside a MarginMM margin. Regions taller than one page
// continue on the next.
type PDFRenderer struct{}

func (PDFRenderer) Format() Format { return FormatPDF }

func (PDFRenderer) Render(w io.Writer, r *Region) error {
	pdf := fpdf.New(Orientation, "mm", PageSize, "")
	pdf.SetMargins(MarginMM, MarginMM, MarginMM)
	pdf.SetAutoPageBreak(false, MarginMM)
	pdf.SetTitle(r.Title, true)
	pdf.SetCreator(DefaultPrefix, true)

	pageW, pageH := pdf.GetPageSize()
	printW := pageW - 2*MarginMM
	printH := pageH - 2*MarginMM

	width := regionWidth(r)
	mmPerPx := printW / width
	perPage := int(math.Floor((printH/mmPerPx - regionHeight(0)) / lineHPx))
	if perPage < 1 {
		perPage = 1
	}

	pages := paginate(r.Lines, perPage)
	for i, lines := range pages {
		title := r.Title
		if len(pages) > 1 {
			title = fmt.Sprintf("%s (%d/%d)", r.Title, i+1, len(pages))
		}

		dc := rasterize(title, lines, width, RasterScale)
		var buf bytes.Buffer
		if err := dc.EncodePNG(&buf); err != nil {
			return fmt.Errorf("encode page %d: %w", i+1, err)
		}

		name := fmt.Sprintf("page-%d", i+1)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.AddPage()
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		heightMM := float64(dc.Height()) / RasterScale * mmPerPx
		pdf.ImageOptions(name, MarginMM, MarginMM, printW, heightMM, false, opts, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// paginate splits lines into chunks of at most n. An empty region still
// yields one page.
func paginate(lines []string, n int) [][]string {
	if len(lines) == 0 {
		return [][]string{nil}
	}
	var pages [][]string
	for len(lines) > n {
		pages = append(pages, lines[:n])
		lines = lines[n:]
	}
	return append(pages, lines)
}
