package grammar

// JavaScript returns the grammar for plain JavaScript.
func JavaScript() *Grammar {
	return cStyle(New("javascript", "source.js", "js")).
		WithFilePatterns("**/*.js", "**/*.mjs", "**/*.cjs")
}

// JSX returns the grammar for JavaScript with JSX elements.
func JSX() *Grammar {
	return cStyle(New("jsx", "source.js.jsx", "js")).
		WithFilePatterns("**/*.jsx").
		EnableJSX()
}

// TypeScript returns the grammar for TypeScript.
func TypeScript() *Grammar {
	return cStyle(New("typescript", "source.ts", "ts")).
		WithFilePatterns("**/*.ts", "**/*.mts", "**/*.cts")
}

// cStyle adds JavaScript-family strings and comments.
func cStyle(g *Grammar) *Grammar {
	return g.
		AddQuotedStrings().
		AddString(StringRule{Open: "`", Close: "`", Scope: "string.quoted.template", Escape: '\\', MultiLine: true}).
		AddLineComment("//").
		SetBlockComment("/*", "*/")
}

// PHP returns the grammar for PHP source embedded in HTML.
func PHP() *Grammar {
	return New("php", "source.php", "php").
		WithRootScopes("text.html.php", "meta.embedded.block.php", "source.php").
		WithFilePatterns("**/*.php", "**/*.phtml").
		AddQuotedStrings().
		AddLineComment("//").
		AddLineComment("#").
		SetBlockComment("/*", "*/")
}

// Hack returns the grammar for Hack.
func Hack() *Grammar {
	return New("hack", "source.hack", "hack").
		WithFilePatterns("**/*.hack", "**/*.hh").
		AddQuotedStrings().
		AddLineComment("//").
		AddLineComment("#").
		SetBlockComment("/*", "*/")
}

// JSON returns the grammar for JSON documents.
func JSON() *Grammar {
	return New("json", "source.json", "json").
		WithFilePatterns("**/*.json").
		AddString(StringRule{Open: `"`, Close: `"`, Scope: "string.quoted.double", Escape: '\\'})
}

// Python returns the grammar for Python. Triple quoted strings span lines
// and are scoped as block strings, which are never split.
func Python() *Grammar {
	return New("python", "source.python", "python").
		WithFilePatterns("**/*.py", "**/*.pyi").
		AddString(StringRule{Open: `"""`, Close: `"""`, Scope: "string.quoted.block", Escape: '\\', MultiLine: true}).
		AddString(StringRule{Open: "'''", Close: "'''", Scope: "string.quoted.block", Escape: '\\', MultiLine: true}).
		AddQuotedStrings().
		AddLineComment("#")
}

// Ruby returns the grammar for Ruby.
func Ruby() *Grammar {
	return New("ruby", "source.ruby", "ruby").
		WithFilePatterns("**/*.rb", "**/Rakefile", "**/Gemfile").
		AddQuotedStrings().
		AddLineComment("#")
}

// Lua returns the grammar for Lua.
func Lua() *Grammar {
	return New("lua", "source.lua", "lua").
		WithFilePatterns("**/*.lua").
		AddQuotedStrings().
		SetBlockComment("--[[", "]]").
		AddLineComment("--")
}

// Go returns the grammar for Go. Single quotes delimit runes, not strings.
func Go() *Grammar {
	return New("go", "source.go", "go").
		WithFilePatterns("**/*.go").
		AddString(StringRule{Open: `"`, Close: `"`, Scope: "string.quoted.double", Escape: '\\'}).
		AddString(StringRule{Open: "`", Close: "`", Scope: "string.quoted.raw", MultiLine: true}).
		AddString(StringRule{Open: "'", Close: "'", Scope: "constant.other.rune", Escape: '\\'}).
		AddLineComment("//").
		SetBlockComment("/*", "*/")
}

// CoffeeScript returns the grammar for CoffeeScript.
func CoffeeScript() *Grammar {
	return New("coffee", "source.coffee", "coffee").
		WithFilePatterns("**/*.coffee").
		AddQuotedStrings().
		SetBlockComment("###", "###").
		AddLineComment("#")
}

// Builtin returns all built-in grammars.
func Builtin() []*Grammar {
	return []*Grammar{
		JavaScript(),
		JSX(),
		TypeScript(),
		PHP(),
		Hack(),
		JSON(),
		Python(),
		Ruby(),
		Lua(),
		Go(),
		CoffeeScript(),
	}
}
