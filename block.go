package recipepdf

// Block is one classified unit of document content.
// Implemented by Title, MetaBlock, Heading, Paragraph and List only.
type Block interface {
	isBlock()
}

// Title is the document title, taken from the first non-empty line.
type Title struct {
	Text string `yaml:"title"`
}

// MetaEntry is one "Label: value" line of the metadata block.
type MetaEntry struct {
	Label string `yaml:"label"` // without the trailing colon
	Value string `yaml:"value"`
}

// String returns the entry in its source form, "Label: value".
func (e MetaEntry) String() string {
	if e.Value == "" {
		return e.Label + ":"
	}
	return e.Label + ": " + e.Value
}

// MetaBlock holds the leading run of recognized metadata lines.
type MetaBlock struct {
	Entries []MetaEntry `yaml:"meta"`
}

// Heading is a secondary-level section heading ("## text").
type Heading struct {
	Text  string `yaml:"heading"`
	Level int    `yaml:"level"`
}

// Paragraph is a run of plain lines. Line breaks inside Text are kept
// and rendered as forced breaks.
type Paragraph struct {
	Text string `yaml:"paragraph"`
}

// ListKind distinguishes bulleted from numbered lists.
type ListKind int

// List kinds.
const (
	Bullet ListKind = iota
	Numbered
)

// String returns "bullet" or "numbered".
func (k ListKind) String() string {
	if k == Numbered {
		return "numbered"
	}
	return "bullet"
}

// MarshalYAML encodes the kind by name.
func (k ListKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// List is a run of same-kind list items. Source numbering is not kept.
type List struct {
	Kind  ListKind `yaml:"list"`
	Items []string `yaml:"items"`
}

func (Title) isBlock()     {}
func (MetaBlock) isBlock() {}
func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (List) isBlock()      {}

// Compile-time interface checks.
var (
	_ Block = Title{}
	_ Block = MetaBlock{}
	_ Block = Heading{}
	_ Block = Paragraph{}
	_ Block = List{}
)
