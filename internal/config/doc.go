// Package config holds the splitstring settings.
//
// Settings live under the "splitString" section of a configuration document:
//
//	[splitString]
//	connector = " +"
//	preset = "default"
//	scopesToIgnore = ["source.json"]
//	jsxHeuristics = true
//
//	[[splitString.scoped]]
//	selector = ".source.lua"
//	connector = " .."
//
// Entries of "scoped" apply when their selector matches the scope stack at
// the cursor. When several match, the most specific selector wins, and among
// equally specific selectors the later entry wins.
//
// Documents come from a file (TOML, YAML or JSON), the environment and
// command line flags, layered in that order over the built-in defaults.
// A Store can be reloaded at any time; readers always see a consistent
// snapshot.
package config
