package main

import (
	"errors"
	"os"

	recipepdf "github.com/priscilaarruda/sorobo-chef-agent"
	"github.com/priscilaarruda/sorobo-chef-agent/internal/config"
)

// Exit codes for the recipepdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All artifacts written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Input unreadable, destination not writable
	ExitBackend = 4 // Browser or PDF generation errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Backend errors (exit 4)
	if errors.Is(err, recipepdf.ErrBrowserConnect) ||
		errors.Is(err, recipepdf.ErrPageCreate) ||
		errors.Is(err, recipepdf.ErrPageLoad) ||
		errors.Is(err, recipepdf.ErrPDFGeneration) ||
		errors.Is(err, recipepdf.ErrInspectArtifact) {
		return ExitBackend
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, recipepdf.ErrCreateDir) ||
		errors.Is(err, recipepdf.ErrWriteArtifact) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, recipepdf.ErrUnknownBackend) ||
		errors.Is(err, recipepdf.ErrInvalidPageSize) ||
		errors.Is(err, recipepdf.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
