// internal/handlers/templates.go
package handlers

import (
	"embed"
	"html/template"
	"strings"

	"github.com/javajoker/productlist/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(template.FuncMap{
		"t":    i18n.T,
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
}
