package recipepdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrCreateDir     = errors.New("cannot create destination directory")
	ErrWriteArtifact = errors.New("cannot write artifact")
	ErrPDFGeneration = errors.New("PDF generation failed")

	// Chrome backend errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Settings validation errors.
	ErrUnknownBackend  = errors.New("unknown backend")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Pool errors.
	ErrPoolClosed = errors.New("renderer pool is closed")

	// Artifact inspection errors.
	ErrInspectArtifact = errors.New("artifact is not a valid PDF")
)
