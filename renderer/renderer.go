// Package renderer renders ledger reports as markdown.
//
// Each report is a text/template in an embedded .md file. Templates can use
// each other by file name without extension, like {{template "ratio_section" .}}.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

var funcs = template.FuncMap{
	"cell": cell,
}

// reports holds every template, parsed once.
var reports = parseReports(templates)

func parseReports(fsys fs.FS) *template.Template {
	root := template.New("reports").Funcs(funcs)
	files, err := fs.Glob(fsys, "*.md")
	if err != nil {
		panic(err)
	}
	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			panic(err)
		}
		template.Must(root.New(strings.TrimSuffix(file, ".md")).Parse(string(content)))
	}
	return root
}

// render executes a report with data. Errors are rendered in place of the report.
func render(name string, data any) string {
	var b strings.Builder
	if err := reports.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error rendering report %q: %v", name, err)
	}
	return b.String()
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
