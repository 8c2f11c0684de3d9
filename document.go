package recipepdf

import (
	"context"
	"io"
)

// Document is the page-layout surface a render writes to. Content is
// appended in order; the implementation owns pagination, fonts and margins.
type Document interface {
	// Paragraph appends text; '\n' inside text is a forced line break.
	Paragraph(style Style, text string)
	// List appends a bulleted or auto-numbered (1..n) list.
	List(kind ListKind, style Style, items []string)
	// Box appends a bordered, shaded single-cell table spanning the
	// writable width, one forced line per entry.
	Box(style Style, lines []string)
	// Space appends a vertical gap in points.
	Space(points float64)
	// Commit writes the finished document to w.
	Commit(ctx context.Context, w io.Writer) error
}

// Backend creates a fresh Document for every render. Implementations may
// hold reusable resources (a browser) released by Close.
type Backend interface {
	NewDocument(page *PageSettings, title string) Document
	Close() error
}

// layout submits blocks to doc in order with their styles.
func layout(doc Document, blocks []Block) {
	for _, blk := range blocks {
		switch b := blk.(type) {
		case Title:
			doc.Paragraph(TitleStyle, b.Text)
			doc.Space(gapAfterTitle)

		case MetaBlock:
			lines := make([]string, len(b.Entries))
			for i, e := range b.Entries {
				lines[i] = e.String()
			}
			doc.Box(MetaStyle, lines)
			doc.Space(gapAfterMeta)

		case Heading:
			doc.Paragraph(HeadingStyle, b.Text)
			doc.Space(gapAfterHeading)

		case Paragraph:
			doc.Paragraph(BodyStyle, b.Text)
			doc.Space(gapAfterParagraph)

		case List:
			doc.List(b.Kind, BodyStyle, b.Items)
			doc.Space(gapAfterList)
		}
	}
}

// documentTitle returns the Title block text, if any.
func documentTitle(blocks []Block) string {
	for _, blk := range blocks {
		if t, ok := blk.(Title); ok {
			return t.Text
		}
	}
	return ""
}
