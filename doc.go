// Package recipepdf turns the recipe and nutrition text produced by the
// Sorobô chef agent into paginated PDF documents.
//
// # Quick Start
//
//	r, err := recipepdf.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	path, err := r.RenderText(ctx, recipeText, "recipes", "sorobo_recipe")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path) // recipes/sorobo_recipe_20261016_153012.pdf
//
// # Pipeline
//
//  1. Classify splits the text into blocks: Title, MetaBlock, Heading,
//     Paragraph and List. It never fails; unknown structure becomes a
//     Paragraph.
//  2. Renderer.Render submits the blocks in order to a backend Document,
//     which paginates, and commits the bytes atomically to one file.
//
// # Recognized Syntax
//
//	first non-blank line        Title (leading '#' and spaces stripped)
//	Tipo de receita: ...        MetaBlock entry, only directly after the
//	Tempo de preparo: ...       title and only as one consecutive run
//	Porções: ...
//	Dificuldade: ...
//	Nível de bagunça: ...
//	## text                     Heading
//	- text                      bullet List item
//	1. text                     numbered List item (numbers are reassigned)
//	anything else               Paragraph line
//	blank line                  separator
//
// A list-marker change ends the current list even without a blank line.
//
// # Backends
//
// "fpdf" (default) renders natively with gofpdf. "chrome" lays the blocks out
// as HTML and prints them with headless Chrome via go-rod; set
// ROD_BROWSER_BIN to use a custom binary and ROD_NO_SANDBOX=1 in containers.
// Use RendererPool to bound concurrent Chrome instances.
package recipepdf
