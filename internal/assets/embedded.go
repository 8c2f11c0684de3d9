package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed styles/*.css templates/*.html fonts/*.ttf
var files embed.FS

// EmbeddedLoader serves assets compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

var _ AssetLoader = (*EmbeddedLoader)(nil)

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: files}
}

// LoadStyle returns styles/<name>.css.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load("styles", name, ".css", ErrStyleNotFound)
}

// LoadTemplate returns templates/<name>.html.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load("templates", name, ".html", ErrTemplateNotFound)
}

// LoadFont returns the raw bytes of fonts/<name>.ttf.
func (e *EmbeddedLoader) LoadFont(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(e.fsys, path.Join("fonts", name+".ttf"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return data, nil
}

func (e *EmbeddedLoader) load(dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(e.fsys, path.Join(dir, name+ext))
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}
	return string(data), nil
}
