package recipepdf

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Artifact naming.
const (
	// DefaultStem replaces a filename hint that sanitizes to nothing.
	DefaultStem = "receita"

	// ArtifactExt is appended to every artifact name.
	ArtifactExt = ".pdf"

	// TimestampLayout gives second precision, so two renders of the same
	// hint within one second produce the same name.
	TimestampLayout = "20060102_150405"
)

// SanitizeHint turns an arbitrary filename hint into a safe file stem:
// lower-cased, spaces as underscores, accents folded, and only ASCII
// letters, digits, '.', '_' and '-' kept. Returns DefaultStem when nothing
// survives.
func SanitizeHint(hint string) string {
	s := strings.ReplaceAll(strings.ToLower(hint), " ", "_")

	// Transformers are stateful; build one per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if isStemRune(r) {
			sb.WriteRune(r)
		}
	}

	if sb.Len() == 0 {
		return DefaultStem
	}
	return sb.String()
}

func isStemRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}

// ArtifactName returns "<stem>_<YYYYMMDD_HHMMSS>.pdf" for hint at now.
func ArtifactName(hint string, now time.Time) string {
	return SanitizeHint(hint) + "_" + now.Format(TimestampLayout) + ArtifactExt
}
