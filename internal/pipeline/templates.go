package pipeline

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

// Templates returns the embedded email template filesystem, rooted so
// template names resolve without the templates/ prefix.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
