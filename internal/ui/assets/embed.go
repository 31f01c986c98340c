// Package assets embeds the static files served under /static.
package assets

import "embed"

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded tree rooted above "static".
func StaticFS() embed.FS {
	return staticFS
}
