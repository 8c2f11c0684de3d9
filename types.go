package recipepdf

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Margin bounds in centimeters.
const (
	MinMargin     = 0.5
	MaxMargin     = 5.0
	DefaultMargin = 2.0
)

// pointsPerCM converts centimeters to PDF points.
const pointsPerCM = 72 / 2.54

// pageDimensions holds portrait width and height in points.
var pageDimensions = map[string][2]float64{
	PageSizeA4:     {595.28, 841.89},
	PageSizeLetter: {612, 792},
	PageSizeLegal:  {612, 1008},
}

// PageSettings configures artifact page dimensions.
type PageSettings struct {
	Size   string  // "a4", "letter", "legal"
	Margin float64 // centimeters, applied to all sides
}

// DefaultPageSettings returns A4 with 2 cm margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:   PageSizeA4,
		Margin: DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := pageDimensions[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// widthPt and heightPt return the page size in points.
func (p *PageSettings) widthPt() float64  { return pageDimensions[strings.ToLower(p.Size)][0] }
func (p *PageSettings) heightPt() float64 { return pageDimensions[strings.ToLower(p.Size)][1] }
func (p *PageSettings) marginPt() float64 { return p.Margin * pointsPerCM }

// Alignment of a styled paragraph.
type Alignment int

// Alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Style is the visual treatment of one block. Sizes are in points.
type Style struct {
	Name        string
	FontSize    float64
	Leading     float64
	Bold        bool
	Align       Alignment
	SpaceBefore float64
	SpaceAfter  float64
}

// Block styles.
var (
	TitleStyle = Style{
		Name:       "title",
		FontSize:   24,
		Leading:    28,
		Bold:       true,
		Align:      AlignCenter,
		SpaceAfter: 18,
	}
	HeadingStyle = Style{
		Name:        "heading",
		FontSize:    16,
		Leading:     20,
		Bold:        true,
		SpaceBefore: 12,
		SpaceAfter:  6,
	}
	BodyStyle = Style{
		Name:       "body",
		FontSize:   12,
		Leading:    16,
		SpaceAfter: 6,
	}
	MetaStyle = Style{
		Name:     "meta",
		FontSize: 12,
		Leading:  16,
		Bold:     true,
	}
)

// Vertical gaps emitted after blocks, in points.
const (
	gapAfterTitle     = 6
	gapAfterMeta      = 12
	gapAfterHeading   = 4
	gapAfterParagraph = 6
	gapAfterList      = 6

	// listIndent is the left indent of list item text.
	listIndent = 12
)

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	backend string
	timeout time.Duration
	page    *PageSettings
}

// Backend names.
const (
	BackendFPDF   = "fpdf"
	BackendChrome = "chrome"
)

// defaultTimeout bounds Chrome page loads.
const defaultTimeout = 30 * time.Second

// WithBackend selects the PDF backend by name ("fpdf" or "chrome").
func WithBackend(name string) Option {
	return func(r *Renderer) {
		r.cfg.backend = strings.ToLower(name)
	}
}

// WithTimeout sets the Chrome page-load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("recipepdf: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithPage sets page size and margins. Nil keeps the defaults.
func WithPage(p *PageSettings) Option {
	return func(r *Renderer) {
		if p != nil {
			r.cfg.page = p
		}
	}
}

// WithClock overrides the time source used for artifact names.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// withBackend injects a Backend directly (tests).
func withBackend(b Backend) Option {
	return func(r *Renderer) {
		r.backend = b
	}
}
