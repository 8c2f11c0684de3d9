package recipepdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/priscilaarruda/sorobo-chef-agent/internal/assets"
	"github.com/priscilaarruda/sorobo-chef-agent/internal/fileutil"
)

// Renderer lays classified blocks out on a PDF backend and commits one
// artifact file per call. It keeps no per-call state, so Render may be
// called from several goroutines.
type Renderer struct {
	cfg     rendererConfig
	backend Backend
	now     func() time.Time
	logger  *zap.Logger
}

// NewRenderer creates a Renderer. The default backend is "fpdf" with A4
// pages and 2 cm margins.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			backend: BackendFPDF,
			timeout: defaultTimeout,
			page:    DefaultPageSettings(),
		},
		now:    time.Now,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.cfg.page.Validate(); err != nil {
		return nil, err
	}

	// Create backend if not injected (e.g., by tests)
	if r.backend == nil {
		switch r.cfg.backend {
		case BackendFPDF:
			b, err := newFPDFBackend(assets.NewEmbeddedLoader())
			if err != nil {
				return nil, fmt.Errorf("initializing fpdf backend: %w", err)
			}
			r.backend = b
		case BackendChrome:
			b, err := newChromeBackend(assets.NewEmbeddedLoader(), r.cfg.timeout)
			if err != nil {
				return nil, fmt.Errorf("initializing chrome backend: %w", err)
			}
			r.backend = b
		default:
			return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownBackend, r.cfg.backend, BackendFPDF, BackendChrome)
		}
	}

	return r, nil
}

// Render writes blocks to <destinationDir>/<stem>_<YYYYMMDD_HHMMSS>.pdf and
// returns that path. destinationDir is created if missing. The artifact is
// either written completely or not at all.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, blocks []Block, destinationDir, filenameHint string) (path string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			path, err = "", fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := os.MkdirAll(destinationDir, fileutil.DirPermissions); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreateDir, err)
	}

	path = filepath.Join(destinationDir, ArtifactName(filenameHint, r.now()))

	doc := r.backend.NewDocument(r.cfg.page, documentTitle(blocks))
	layout(doc, blocks)

	var buf bytes.Buffer
	if err := doc.Commit(ctx, &buf); err != nil {
		return "", fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}

	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), fileutil.FilePermissions); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}

	r.logger.Debug("artifact committed",
		zap.String("path", path),
		zap.String("backend", r.cfg.backend),
		zap.Int("blocks", len(blocks)),
		zap.Int("bytes", buf.Len()),
	)
	return path, nil
}

// RenderText classifies raw and renders the result.
func (r *Renderer) RenderText(ctx context.Context, raw, destinationDir, filenameHint string) (string, error) {
	return r.Render(ctx, Classify(raw), destinationDir, filenameHint)
}

// Close releases backend resources (the headless browser, for "chrome").
func (r *Renderer) Close() error {
	if r.backend != nil {
		return r.backend.Close()
	}
	return nil
}
