package assets

import "embed"

// Levels holds the built-in level maps under levels/.
//
//go:embed levels/*.tmx
var Levels embed.FS
