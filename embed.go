package landing

import (
	"embed"
	"io/fs"
)

// EmbeddedAssets contains the default static assets (site.css) served under
// /public/ when the static dir does not provide its own copy.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// embeddedAssets returns EmbeddedAssets rooted at embedded/.
func embeddedAssets() fs.FS {
	sub, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		// "embedded" is a constant, valid path.
		panic(err)
	}
	return sub
}
