// Package web holds the HTML templates of the site.
package web

import "embed"

// Templates contains layout.html, partials.html and one file per page.
//
//go:embed templates/*.html
var Templates embed.FS
