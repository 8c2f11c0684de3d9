//go:build integration

package recipepdf

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests launch a real Chrome. Rod downloads Chromium on first run
// unless ROD_BROWSER_BIN points at an installed one.

const integrationTimeout = time.Minute

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "prefix %q", data[:min(10, len(data))])
	assert.Greater(t, len(data), 100)
}

func TestRodRenderer_EnsureBrowser_CI(t *testing.T) {
	t.Setenv("CI", "true")

	r := newRodRenderer(integrationTimeout)
	defer r.Close()

	browser, err := r.ensureBrowser()
	require.NoError(t, err)
	assert.NotNil(t, browser)
	assert.NotNil(t, r.launcher)

	require.NoError(t, r.Close())
	assert.Nil(t, r.browser)
	assert.Nil(t, r.launcher)
}

func TestRodRenderer_RenderFromFile(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(integrationTimeout)
	defer r.Close()

	path := t.TempDir() + "/page.html"
	require.NoError(t, os.WriteFile(path, []byte("<!DOCTYPE html><html><body><h1>Bolo</h1></body></html>"), 0o600))

	data, err := r.RenderFromFile(context.Background(), path, DefaultPageSettings())
	require.NoError(t, err)
	assertValidPDF(t, data)
}

func TestRodRenderer_RenderFromFile_ContextCanceled(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(integrationTimeout)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RenderFromFile(ctx, "/tmp/nonexistent.html", DefaultPageSettings())
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, r.browser, "browser must not launch for a canceled context")
}

func TestChromeBackend_RenderAndInspect(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(
		WithBackend(BackendChrome),
		WithTimeout(integrationTimeout),
		WithClock(func() time.Time { return time.Date(2025, 3, 7, 9, 4, 5, 0, time.UTC) }),
	)
	require.NoError(t, err)
	defer r.Close()

	path, err := r.RenderText(context.Background(), `# Panqueca de Banana
Tipo de receita: Vegana
Tempo de preparo: 10 minutos

## Ingredientes
- Banana
- Farinha

## Modo de preparo
1. Misture
2. Frite`, t.TempDir(), "Panqueca")
	require.NoError(t, err)

	info, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Pages)
}
