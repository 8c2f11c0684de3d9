package recipepdf_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	recipepdf "github.com/priscilaarruda/sorobo-chef-agent"
)

// Example classifies a recipe and prints the blocks it found.
func Example() {
	blocks := recipepdf.Classify(`# Panqueca de Banana
Tipo de receita: Vegana

## Ingredientes
- Banana
- Farinha`)

	for _, b := range blocks {
		fmt.Printf("%T\n", b)
	}
	// Output:
	// recipepdf.Title
	// recipepdf.MetaBlock
	// recipepdf.Heading
	// recipepdf.List
}

// Example_markdown shows the normalized text form of classified blocks.
func Example_markdown() {
	blocks := recipepdf.Classify("Resumo Nutricional\r\n\r\nCalorias: 220   \r\nProteínas: 8g")
	fmt.Print(recipepdf.Markdown(blocks))
	// Output:
	// # Resumo Nutricional
	//
	// Calorias: 220
	// Proteínas: 8g
}

// ExampleRenderer_RenderText writes a PDF with the built-in fpdf backend,
// which needs no browser.
func ExampleRenderer_RenderText() {
	dir, err := os.MkdirTemp("", "recipes")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	r, err := recipepdf.NewRenderer(
		recipepdf.WithClock(func() time.Time { return time.Date(2025, 3, 7, 9, 4, 5, 0, time.UTC) }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	path, err := r.RenderText(context.Background(), "# Bolo\n- cenoura\n- ovos", dir, "Bolo de Cenoura")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(filepath.Base(path))
	// Output: bolo_de_cenoura_20250307_090405.pdf
}
