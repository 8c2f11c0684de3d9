// Package assets provides the CSS style and HTML page template used by the
// Chrome backend and the TrueType fonts used by the fpdf backend. All are
// embedded at compile time.
//
//	styles/
//	└── {name}.css        # page and block styles (default: recipe)
//	templates/
//	└── {name}.html       # html/template page skeleton (default: document)
//	fonts/
//	└── {name}.ttf        # DejaVu Sans Condensed, regular and bold
//
// Asset names are validated so they cannot escape their directory.
package assets
