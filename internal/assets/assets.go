// Package assets bundles the sample decks used when no assets location is
// configured.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var data embed.FS

// Decks returns the bundled decks rooted so that "go.json" resolves.
func Decks() fs.FS {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		panic("flashdeck: bundled decks: " + err.Error())
	}
	return sub
}
