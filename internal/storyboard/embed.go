// ABOUTME: Built-in demo storyboard embedded in the binary
// ABOUTME: Used when no storyboard directory is configured

package storyboard

import (
	"embed"
	"io/fs"
)

//go:embed default/*.md
var defaultFS embed.FS

// Default returns the built-in storyboard files.
func Default() fs.FS {
	sub, err := fs.Sub(defaultFS, "default")
	if err != nil {
		panic(err)
	}
	return sub
}
