package assets

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads default recipe style",
			styleName:   DefaultStyleName,
			wantContain: ".meta-box",
		},
		{
			name:      "returns ErrStyleNotFound for nonexistent",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for empty name",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) should contain %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("loads default document template", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadTemplate(DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() unexpected error: %v", err)
		}
		for _, want := range []string{"{{.Body}}", "@page"} {
			if !strings.Contains(got, want) {
				t.Errorf("template should contain %q", want)
			}
		}
	})

	t.Run("returns ErrTemplateNotFound for nonexistent", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("cover")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(\"cover\") error = %v, want %v", err, ErrTemplateNotFound)
		}
	})

	t.Run("rejects names with dots", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("document.html")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(\"document.html\") error = %v, want %v", err, ErrInvalidAssetName)
		}
	})
}

func TestEmbeddedLoader_LoadFont(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{RegularFontName, BoldFontName} {
		data, err := loader.LoadFont(name)
		if err != nil {
			t.Fatalf("LoadFont(%q) unexpected error: %v", name, err)
		}
		// TrueType files start with the sfnt version 0x00010000.
		if !bytes.HasPrefix(data, []byte{0, 1, 0, 0}) {
			t.Errorf("LoadFont(%q) is not a TrueType file", name)
		}
	}

	tests := []struct {
		name    string
		wantErr error
	}{
		{"Helvetica", ErrFontNotFound},
		{"../styles/recipe", ErrInvalidAssetName},
	}
	for _, tt := range tests {
		if _, err := loader.LoadFont(tt.name); !errors.Is(err, tt.wantErr) {
			t.Errorf("LoadFont(%q) error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}
