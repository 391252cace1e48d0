// Package renderer renders the game state as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var embedded embed.FS

// templates is the template folder, file names are relative to it.
var templates, _ = fs.Sub(embedded, "templates")

// DashboardOptions holds configuration for rendering a dashboard.
type DashboardOptions struct {
	SkipGuidance bool // Do not render the guidance block even if it is open.
}

// RenderDashboard renders the Dashboard of a team to a markdown string.
func RenderDashboard(d *Dashboard, opts DashboardOptions) string {
	partials := map[string]string{
		"dashboard_title":     "dashboard_title.md",
		"dashboard_terms":     "dashboard_terms.md",
		"dashboard_valuation": "dashboard_valuation.md",
	}

	// An empty file name results in an empty template.
	if opts.SkipGuidance || !d.Guidance {
		partials["dashboard_guidance"] = ""
	} else {
		partials["dashboard_guidance"] = "dashboard_guidance.md"
	}

	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderTerms renders the term catalog to a markdown string.
func RenderTerms(c *Catalog) string {
	partials := map[string]string{
		"terms_bands": "terms_bands.md",
	}
	return renderTemplate("terms", "terms.md", partials, c)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

var funcs = template.FuncMap{
	"join": strings.Join,
	// cell escapes the table separator in free text.
	"cell": func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
}
