// Package web carries the HTML templates and static assets. Templates are
// embedded so the binary and the tests do not depend on a working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
