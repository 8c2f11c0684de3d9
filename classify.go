package recipepdf

import (
	"regexp"
	"strings"
	"unicode"
)

// MetaLabels are the labels recognized in the metadata run that directly
// follows the title. Order in the input does not matter.
var MetaLabels = []string{
	"Tipo de receita",
	"Tempo de preparo",
	"Porções",
	"Dificuldade",
	"Nível de bagunça",
}

// Line markers of the recognized markdown subset.
const (
	headingMarker = "## "
	bareHeading   = "##" // "## " once right-trimmed
	bulletMarker  = "- "
	headingLevel  = 2
)

// Precompiled regex patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// "<digits>. text"
	numberedItem = regexp.MustCompile(`^\d+\.\s+(.*)$`)
)

// Classify splits raw text into an ordered block sequence.
// It never fails: anything it does not recognize becomes a Paragraph.
// Empty or whitespace-only input yields no blocks.
func Classify(raw string) []Block {
	lines := splitLines(raw)

	start := -1
	for i, line := range lines {
		if line != "" {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	s := foldState{
		open:   noBlock{},
		blocks: []Block{Title{Text: titleText(lines[start])}},
	}
	for _, line := range lines[start+1:] {
		s = step(s, line)
	}
	return s.finish().blocks
}

// splitLines normalizes line endings and right-trims every line.
func splitLines(raw string) []string {
	raw = crlfOrCR.ReplaceAllString(raw, "\n")
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return lines
}

func titleText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "# "))
}

// metaLatch gates metadata recognition. Once closed it never reopens.
type metaLatch int

const (
	awaitingMeta metaLatch = iota
	metaClosed
)

// openBlock is the accumulator fed by consecutive lines.
type openBlock interface {
	flush() (Block, bool)
}

type noBlock struct{}

type inParagraph struct {
	lines []string
}

type inList struct {
	kind  ListKind
	items []string
}

func (noBlock) flush() (Block, bool) { return nil, false }

func (p inParagraph) flush() (Block, bool) {
	if len(p.lines) == 0 {
		return nil, false
	}
	return Paragraph{Text: strings.Join(p.lines, "\n")}, true
}

func (l inList) flush() (Block, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return List{Kind: l.kind, Items: l.items}, true
}

// foldState is the value threaded through the classification fold.
type foldState struct {
	meta    metaLatch
	entries []MetaEntry
	open    openBlock
	blocks  []Block
}

// step consumes one right-trimmed line after the title.
func step(s foldState, line string) foldState {
	if s.meta == awaitingMeta {
		if entry, ok := parseMetaLine(line); ok {
			s.entries = append(s.entries, entry)
			return s
		}
		s = s.closeMeta()
	}

	ln := classifyLine(line)
	switch ln.kind {
	case lineBlank:
		return s.flush()

	case lineHeading:
		s = s.flush()
		s.blocks = append(s.blocks, Heading{Text: ln.text, Level: headingLevel})
		return s

	case lineBullet, lineNumbered:
		kind := Bullet
		if ln.kind == lineNumbered {
			kind = Numbered
		}
		if open, ok := s.open.(inList); ok && open.kind == kind {
			s.open = inList{kind: kind, items: append(open.items, ln.text)}
			return s
		}
		s = s.flush()
		s.open = inList{kind: kind, items: []string{ln.text}}
		return s

	default:
		if open, ok := s.open.(inParagraph); ok {
			s.open = inParagraph{lines: append(open.lines, ln.text)}
			return s
		}
		s = s.flush()
		s.open = inParagraph{lines: []string{ln.text}}
		return s
	}
}

// closeMeta latches metadata recognition off and emits any collected entries.
func (s foldState) closeMeta() foldState {
	if s.meta == metaClosed {
		return s
	}
	s.meta = metaClosed
	if len(s.entries) > 0 {
		s.blocks = append(s.blocks, MetaBlock{Entries: s.entries})
		s.entries = nil
	}
	return s
}

// flush closes the open accumulator, emitting its block if non-empty.
func (s foldState) flush() foldState {
	if b, ok := s.open.flush(); ok {
		s.blocks = append(s.blocks, b)
	}
	s.open = noBlock{}
	return s
}

func (s foldState) finish() foldState {
	return s.closeMeta().flush()
}

// parseMetaLine matches a trimmed line against the metadata labels.
func parseMetaLine(line string) (MetaEntry, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return MetaEntry{}, false
	}
	for _, label := range MetaLabels {
		if rest, ok := strings.CutPrefix(trimmed, label+":"); ok {
			return MetaEntry{Label: label, Value: strings.TrimSpace(rest)}, true
		}
	}
	return MetaEntry{}, false
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineBullet
	lineNumbered
	lineText
)

type classifiedLine struct {
	kind lineKind
	text string
}

// classifyLine decides a line's kind from its marker syntax alone.
func classifyLine(line string) classifiedLine {
	if strings.TrimSpace(line) == "" {
		return classifiedLine{kind: lineBlank}
	}
	if line == bareHeading || strings.HasPrefix(line, headingMarker) {
		return classifiedLine{kind: lineHeading, text: strings.TrimSpace(strings.TrimLeft(line, "# "))}
	}
	if rest, ok := strings.CutPrefix(line, bulletMarker); ok {
		return classifiedLine{kind: lineBullet, text: strings.TrimSpace(rest)}
	}
	if m := numberedItem.FindStringSubmatch(line); m != nil {
		return classifiedLine{kind: lineNumbered, text: strings.TrimSpace(m[1])}
	}
	return classifiedLine{kind: lineText, text: line}
}
