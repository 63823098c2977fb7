// Package content embeds the built-in Lua game content.
package content

import "embed"

// FS holds game.lua and the scenario files.
//
//go:embed *.lua
var FS embed.FS
