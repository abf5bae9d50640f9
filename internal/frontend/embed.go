package frontend

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

// TemplatesFS returns the embedded page templates
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}
