package recipepdf

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/priscilaarruda/sorobo-chef-agent/internal/assets"
	"github.com/priscilaarruda/sorobo-chef-agent/internal/fileutil"
)

// chromeBackend lays blocks out as HTML and prints them with headless Chrome.
type chromeBackend struct {
	renderer pdfRenderer
	css      string
	page     *template.Template
}

// newChromeBackend loads the embedded style and page template.
func newChromeBackend(loader assets.AssetLoader, timeout time.Duration) (*chromeBackend, error) {
	css, err := loader.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading style: %w", err)
	}

	src, err := loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}

	tmpl, err := template.New(assets.DefaultTemplateName).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &chromeBackend{
		renderer: newRodRenderer(timeout),
		css:      css,
		page:     tmpl,
	}, nil
}

// NewDocument starts an empty HTML body.
func (b *chromeBackend) NewDocument(page *PageSettings, title string) Document {
	return &htmlDocument{backend: b, settings: page, title: title}
}

// Close releases the browser.
func (b *chromeBackend) Close() error {
	return b.renderer.Close()
}

// htmlDocument accumulates block markup for one render.
type htmlDocument struct {
	backend  *chromeBackend
	settings *PageSettings
	title    string
	body     strings.Builder
}

// pageData feeds the document template.
type pageData struct {
	Title      string
	PageWidth  float64
	PageHeight float64
	Margin     float64
	CSS        template.CSS
	Body       template.HTML
}

// withBreaks escapes text and turns '\n' into <br>.
func withBreaks(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = html.EscapeString(l)
	}
	return strings.Join(lines, "<br>")
}

func styleAttr(s Style) string {
	var sb strings.Builder
	if s.SpaceBefore > 0 {
		sb.WriteString("margin-top:" + formatPt(s.SpaceBefore) + ";")
	}
	if s.SpaceAfter > 0 {
		sb.WriteString("margin-bottom:" + formatPt(s.SpaceAfter) + ";")
	}
	if sb.Len() == 0 {
		return ""
	}
	return ` style="` + sb.String() + `"`
}

func formatPt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "pt"
}

func (d *htmlDocument) Paragraph(style Style, text string) {
	tag := "p"
	switch style.Name {
	case TitleStyle.Name:
		tag = "h1"
	case HeadingStyle.Name:
		tag = "h2"
	}
	fmt.Fprintf(&d.body, "<%s class=%q%s>%s</%s>\n", tag, style.Name, styleAttr(style), withBreaks(text), tag)
}

func (d *htmlDocument) List(kind ListKind, style Style, items []string) {
	tag := "ul"
	if kind == Numbered {
		tag = "ol"
	}
	fmt.Fprintf(&d.body, "<%s class=\"list\">\n", tag)
	for _, item := range items {
		fmt.Fprintf(&d.body, "<li><p class=%q%s>%s</p></li>\n", style.Name, styleAttr(style), withBreaks(item))
	}
	fmt.Fprintf(&d.body, "</%s>\n", tag)
}

func (d *htmlDocument) Box(style Style, lines []string) {
	fmt.Fprintf(&d.body, "<table class=\"meta-box\"><tr><td><p class=%q>%s</p></td></tr></table>\n",
		style.Name, withBreaks(strings.Join(lines, "\n")))
}

func (d *htmlDocument) Space(points float64) {
	if points > 0 {
		fmt.Fprintf(&d.body, "<div class=\"space\" style=\"height:%s\"></div>\n", formatPt(points))
	}
}

// HTML returns the complete page markup.
func (d *htmlDocument) HTML() (string, error) {
	var buf bytes.Buffer
	err := d.backend.page.Execute(&buf, pageData{
		Title:      d.title,
		PageWidth:  d.settings.widthPt(),
		PageHeight: d.settings.heightPt(),
		Margin:     d.settings.marginPt(),
		CSS:        template.CSS(d.backend.css), // #nosec G203 -- embedded asset
		Body:       template.HTML(d.body.String()), // #nosec G203 -- escaped above
	})
	if err != nil {
		return "", fmt.Errorf("%w: executing page template: %v", ErrPDFGeneration, err)
	}
	return buf.String(), nil
}

// Commit writes the page to a temporary HTML file, prints it and copies
// the PDF to w.
func (d *htmlDocument) Commit(ctx context.Context, w io.Writer) error {
	page, err := d.HTML()
	if err != nil {
		return err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(page, "html")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	pdf, err := d.backend.renderer.RenderFromFile(ctx, tmpPath, d.settings)
	if err != nil {
		return err
	}

	if _, err := w.Write(pdf); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ Backend  = (*chromeBackend)(nil)
	_ Document = (*htmlDocument)(nil)
)
