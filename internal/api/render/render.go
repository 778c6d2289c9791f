// Package render produces the server-side HTML views: the home page and the
// per-resource table pages returned when a client does not ask for JSON.
// Rendering is kept apart from the handlers so the CRUD layer only exposes
// data.
package render

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

var tmpl = template.Must(template.ParseFS(files, "templates/*.html"))

// TablePage is the data for a rendered resource listing.
type TablePage struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Section is one catalog area linked from the home page.
type Section struct {
	Title string
	Path  string
}

// Sections lists the five catalog tables in display order.
var Sections = []Section{
	{Title: "Attributes", Path: "/Attribute"},
	{Title: "Business Term Owners", Path: "/Business-Term-Owner"},
	{Title: "Entities", Path: "/Entity"},
	{Title: "Glossary of Business Terms", Path: "/Glossary-of-Business-Terms"},
	{Title: "Source Systems", Path: "/Source-Systems"},
}

// Table renders a resource listing as an HTML document.
func Table(page TablePage) (string, error) {
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, "table.html", page); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Home renders the landing page linking each catalog table.
func Home() (string, error) {
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, "home.html", Sections); err != nil {
		return "", err
	}
	return b.String(), nil
}
