// Package logo embeds the pristine logo template that every recoloring starts from.
package logo

import (
	_ "embed"
)

//go:embed logo.svg
var template string

// MediaType is the content type used when serving or exporting the logo.
const MediaType = "image/svg+xml; charset=utf-8"

// Template returns the pristine logo document.
func Template() string {
	return template
}
