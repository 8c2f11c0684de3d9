package recipepdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ArtifactInfo describes a committed artifact.
type ArtifactInfo struct {
	Path  string
	Pages int
	Bytes int64
}

// Inspect validates the PDF at path and reports its page count.
func Inspect(path string) (*ArtifactInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInspectArtifact, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: counting pages: %v", ErrInspectArtifact, err)
	}

	return &ArtifactInfo{Path: path, Pages: pages, Bytes: st.Size()}, nil
}
