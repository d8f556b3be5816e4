// Package bootstrap embeds the bundled standard-library source text so
// the binary carries it without a runtime filesystem dependency.
package bootstrap

import (
	"embed"
	"io/fs"
)

//go:embed *.lisp
var bootstrapFS embed.FS

// Files returns the embedded filesystem of bundled .lisp sources.
func Files() fs.FS {
	return bootstrapFS
}
