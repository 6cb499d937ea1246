package web

import "embed"

// Templates holds the embedded web/templates directory.
//
//go:embed templates
var Templates embed.FS
