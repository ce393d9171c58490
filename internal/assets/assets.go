// Package assets embeds the stylesheet and script of the projects section.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("embedded static dir missing: " + err.Error())
	}
	return sub
}
