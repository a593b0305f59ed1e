// Package views holds the embedded HTML templates of the clinic pages.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// Funcs returns the template helpers. Timestamps are shown in loc.
func Funcs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.In(loc).Format("2006-01-02 15:04")
		},
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}

// Load parses every page template.
func Load(loc *time.Location) (*template.Template, error) {
	return template.New("").Funcs(Funcs(loc)).ParseFS(files, "templates/*.html")
}
