package templates

import (
	"embed"
	"io/fs"
)

// assetsFS holds the template repository shipped with the binary.
//
//go:embed all:assets
var assetsFS embed.FS

// Embedded returns the embedded template repository rooted at its base/ and
// modules/ directories.
func Embedded() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
