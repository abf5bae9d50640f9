package frontend

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/gin-gonic/gin"
)

const (
	formTemplate   = "form.html"
	resultTemplate = "result.html"
)

// PersonForm holds the raw form values for one person, echoed back when
// the form is re-rendered
type PersonForm struct {
	Prefix string
	Name   string
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
	NoTime bool
}

// FormPage is the data for the input form
type FormPage struct {
	Nonce   string
	Prompt  string
	PersonA PersonForm
	PersonB PersonForm
}

// ResultPage is the data for the result view
type ResultPage struct {
	Nonce   string
	Score   int
	Band    string
	Message string
	Names   []string
}

// LoadTemplates parses the page templates from fsys
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	for _, name := range []string{formTemplate, resultTemplate} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q not found", name)
		}
	}
	return tmpl, nil
}

// render executes a template into a buffer first so a failed execution
// never leaves a half-written page
func render(c *gin.Context, tmpl *template.Template, name string, status int, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
	return nil
}

func emptyForm() FormPage {
	return FormPage{
		PersonA: PersonForm{Prefix: "a"},
		PersonB: PersonForm{Prefix: "b"},
	}
}
