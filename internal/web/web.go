// Package web holds the HTML templates served by the handlers.
package web

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var files embed.FS

var funcs = template.FuncMap{
	"truncate": func(n int, s string) string {
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return string(r[:n]) + "..."
	},
	"title": func(s string) string {
		return strings.ReplaceAll(s, "_", " ")
	},
	"selected": func(id uint64, current *uint64) bool {
		return current != nil && *current == id
	},
}

// Templates parses every embedded template. Each is addressed by its file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.tmpl")
}
