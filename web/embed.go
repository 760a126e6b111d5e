// Package web provides the embedded browser assets for the festival page.
// The script is served at /assets/site.js and copied into static exports.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
