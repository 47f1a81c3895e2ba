// Package assets embeds static data files shipped with the binary.
package assets

import "embed"

// Points holds the embedded point-of-interest catalog.
//
//go:embed points
var Points embed.FS
