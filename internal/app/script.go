package app

import (
	"embed"
	"io/fs"
)

// frontendFS holds the bootstrap page served by the host before the target
// URL is loaded, and the script injected into every page.
//
//go:embed frontend/index.html frontend/inject.js
var frontendFS embed.FS

// Assets returns the bootstrap page tree for the host's asset server.
func Assets() fs.FS {
	sub, err := fs.Sub(frontendFS, "frontend")
	if err != nil {
		panic(err)
	}
	return sub
}

// pageScript returns the script injected after each page load: the drag
// hotspot, hidden scrollbars, new-window routing and URL reporting.
func pageScript() string {
	b, err := frontendFS.ReadFile("frontend/inject.js")
	if err != nil {
		panic(err)
	}
	return string(b)
}
