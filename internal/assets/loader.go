package assets

import "errors"

// Names of the assets the chrome backend loads.
const (
	DefaultStyleName    = "recipe"
	DefaultTemplateName = "document"
)

// Font files the fpdf backend embeds in every document.
const (
	RegularFontName = "DejaVuSansCondensed"
	BoldFontName    = "DejaVuSansCondensed-Bold"
)

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrFontNotFound     = errors.New("font not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// AssetLoader resolves asset names (no extension) to their content.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}
