// Package content holds the site copy that ships inside the binary: the
// product catalog, customer reviews and policy pages.
package content

import "embed"

//go:embed catalog.yaml
var Catalog []byte

//go:embed reviews.yaml
var Reviews []byte

//go:embed policies/*.md
var Policies embed.FS
