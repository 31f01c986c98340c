package ui

import (
	"encoding/json"
	"io/fs"
	"path"
	"strings"
	"sync"

	"blockpharm/internal/ui/assets"
)

const (
	staticPrefix          = "/static/"
	defaultStylesheetPath = staticPrefix + "css/app.css"
	faviconPath           = "/favicon.svg"
)

var (
	stylesheetPathOnce sync.Once
	stylesheetPath     = defaultStylesheetPath
)

// stylesheetHref resolves the stylesheet through css/manifest.json so a
// fingerprinted build can be dropped in without touching the page code.
func stylesheetHref() string {
	stylesheetPathOnce.Do(func() {
		stylesheetPath = resolveStylesheet(assets.StaticFS())
	})
	return stylesheetPath
}

func resolveStylesheet(fsys fs.FS) string {
	manifestBytes, err := fs.ReadFile(fsys, "static/css/manifest.json")
	if err != nil {
		return defaultStylesheetPath
	}

	manifest := map[string]string{}
	if err := json.Unmarshal(manifestBytes, &manifest); err != nil {
		return defaultStylesheetPath
	}

	name := strings.TrimSpace(manifest["app.css"])
	if name == "" || path.Base(name) != name || path.Ext(name) != ".css" {
		return defaultStylesheetPath
	}
	return staticPrefix + "css/" + name
}
