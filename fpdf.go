package recipepdf

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/runes"

	"github.com/priscilaarruda/sorobo-chef-agent/internal/assets"
)

// Native backend font and box colors.
const (
	fpdfFontFamily = "dejavu"
	fpdfCreator    = "recipepdf"

	// maxFPDFRune is the last rune gofpdf's UTF-8 font tables can index.
	maxFPDFRune = 0xFFFF

	// markerWidth is the hanging column that holds bullets and numbers.
	markerWidth = 2 * listIndent

	boxPadding   = 6
	boxLineWidth = 0.5
)

var (
	boxFill   = [3]int{245, 245, 245} // whitesmoke
	boxBorder = [3]int{128, 128, 128} // grey
)

// basicPlane replaces runes outside the Basic Multilingual Plane (emoji,
// mostly) with U+FFFD. Everything else passes through as UTF-8.
var basicPlane = runes.Map(func(r rune) rune {
	if r > maxFPDFRune {
		return utf8.RuneError
	}
	return r
})

// fpdfBackend renders natively with gofpdf using embedded DejaVu Sans
// Condensed TrueType fonts.
type fpdfBackend struct {
	compress bool
	regular  []byte
	bold     []byte
}

// newFPDFBackend loads the fonts once; every document embeds a subset.
func newFPDFBackend(loader fontLoader) (*fpdfBackend, error) {
	regular, err := loader.LoadFont(assets.RegularFontName)
	if err != nil {
		return nil, err
	}
	bold, err := loader.LoadFont(assets.BoldFontName)
	if err != nil {
		return nil, err
	}
	return &fpdfBackend{compress: true, regular: regular, bold: bold}, nil
}

// fontLoader is the part of assets.EmbeddedLoader the fpdf backend needs.
type fontLoader interface {
	LoadFont(name string) ([]byte, error)
}

// NewDocument starts a one-page document with the given page settings.
func (b *fpdfBackend) NewDocument(page *PageSettings, title string) Document {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.widthPt(), Ht: page.heightPt()},
	})

	margin := page.marginPt()
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCompression(b.compress)
	pdf.SetTitle(title, true)
	pdf.SetCreator(fpdfCreator, false)
	pdf.AddUTF8FontFromBytes(fpdfFontFamily, "", b.regular)
	pdf.AddUTF8FontFromBytes(fpdfFontFamily, "B", b.bold)
	pdf.AddPage()

	return &fpdfDocument{pdf: pdf}
}

// Close is a no-op; gofpdf holds no shared resources.
func (b *fpdfBackend) Close() error { return nil }

// fpdfDocument adapts a gofpdf.Fpdf to Document.
type fpdfDocument struct {
	pdf *gofpdf.Fpdf
}

func (d *fpdfDocument) tr(text string) string {
	return basicPlane.String(text)
}

func (d *fpdfDocument) setFont(s Style) {
	fontStyle := ""
	if s.Bold {
		fontStyle = "B"
	}
	d.pdf.SetFont(fpdfFontFamily, fontStyle, s.FontSize)
}

func (d *fpdfDocument) Space(points float64) {
	if points > 0 {
		d.pdf.Ln(points)
	}
}

func (d *fpdfDocument) Paragraph(style Style, text string) {
	d.Space(style.SpaceBefore)
	d.setFont(style)

	align := "L"
	if style.Align == AlignCenter {
		align = "C"
	}
	d.pdf.MultiCell(0, style.Leading, d.tr(text), "", align, false)

	d.Space(style.SpaceAfter)
}

func (d *fpdfDocument) List(kind ListKind, style Style, items []string) {
	d.Space(style.SpaceBefore)
	d.setFont(style)

	left, _, _, _ := d.pdf.GetMargins()
	for i, item := range items {
		marker := "•"
		if kind == Numbered {
			marker = strconv.Itoa(i+1) + "."
		}

		d.pdf.SetX(left)
		d.pdf.CellFormat(markerWidth, style.Leading, d.tr(marker), "", 0, "C", false, 0, "")
		// MultiCell keeps the current x for every wrapped line.
		d.pdf.MultiCell(0, style.Leading, d.tr(item), "", "L", false)
		d.Space(style.SpaceAfter)
	}
	d.pdf.SetX(left)
}

func (d *fpdfDocument) Box(style Style, lines []string) {
	d.Space(style.SpaceBefore)
	d.setFont(style)

	prevMargin := d.pdf.GetCellMargin()
	d.pdf.SetCellMargin(boxPadding)
	d.pdf.SetFillColor(boxFill[0], boxFill[1], boxFill[2])
	d.pdf.SetDrawColor(boxBorder[0], boxBorder[1], boxBorder[2])
	d.pdf.SetLineWidth(boxLineWidth)

	d.pdf.MultiCell(0, style.Leading, d.tr(strings.Join(lines, "\n")), "1", "L", true)

	d.pdf.SetCellMargin(prevMargin)
	d.Space(style.SpaceAfter)
}

// Commit writes the PDF to w. Any error recorded by gofpdf during layout
// surfaces here.
func (d *fpdfDocument) Commit(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ Backend  = (*fpdfBackend)(nil)
	_ Document = (*fpdfDocument)(nil)
)
