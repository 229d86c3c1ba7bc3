package web

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Render escribe una página embebida. Las páginas son estáticas
// (sin datos), así que un fallo acá solo puede ser un nombre mal escrito.
func Render(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, nil); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
