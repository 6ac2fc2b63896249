// Package grammar assigns TextMate-style scope stacks to buffer positions.
//
// It is a deliberately small line-state scanner, not a full TextMate engine:
// it recognises string literals, comments and (for JSX) tags and embedded
// expressions, which is all the string splitter needs to reason about.
package grammar

import "unicode"

// StringRule describes one kind of string literal.
type StringRule struct {
	// Open and Close are the delimiters.
	Open  string
	Close string

	// Scope is the scope name without the language suffix,
	// e.g. "string.quoted.single".
	Scope string

	// Escape starts a two-rune escape sequence; 0 disables escapes.
	Escape rune

	// MultiLine strings carry over to the next line when unterminated.
	MultiLine bool
}

// Grammar describes how to scope one language.
type Grammar struct {
	name         string
	scopeName    string
	rootScopes   []string
	suffix       string
	filePatterns []string
	strings      []StringRule
	lineComments []string
	blockOpen    string
	blockClose   string
	jsx          bool
}

// New creates a grammar. The scope name is also the default root scope and
// suffix is appended to every token scope ("js" gives "string.quoted.single.js").
func New(name, scopeName, suffix string) *Grammar {
	return &Grammar{
		name:       name,
		scopeName:  scopeName,
		rootScopes: []string{scopeName},
		suffix:     suffix,
	}
}

// WithRootScopes replaces the root scopes present at every position.
func (g *Grammar) WithRootScopes(scopes ...string) *Grammar {
	g.rootScopes = append([]string(nil), scopes...)
	return g
}

// WithFilePatterns sets the doublestar patterns of files using this grammar.
func (g *Grammar) WithFilePatterns(patterns ...string) *Grammar {
	g.filePatterns = append(g.filePatterns, patterns...)
	return g
}

// AddString adds a string rule. Rules are tried in order, so longer openers
// such as `"""` must be added before `"`.
func (g *Grammar) AddString(rule StringRule) *Grammar {
	g.strings = append(g.strings, rule)
	return g
}

// AddQuotedStrings adds the usual escaped single and double quoted strings.
func (g *Grammar) AddQuotedStrings() *Grammar {
	g.AddString(StringRule{Open: "'", Close: "'", Scope: "string.quoted.single", Escape: '\\'})
	g.AddString(StringRule{Open: `"`, Close: `"`, Scope: "string.quoted.double", Escape: '\\'})
	return g
}

// AddLineComment adds a line comment marker.
func (g *Grammar) AddLineComment(marker string) *Grammar {
	g.lineComments = append(g.lineComments, marker)
	return g
}

// SetBlockComment sets the block comment delimiters.
func (g *Grammar) SetBlockComment(open, close string) *Grammar {
	g.blockOpen = open
	g.blockClose = close
	return g
}

// EnableJSX turns on recognition of JSX tags and embedded expressions.
func (g *Grammar) EnableJSX() *Grammar {
	g.jsx = true
	return g
}

// Name returns the language name.
func (g *Grammar) Name() string {
	return g.name
}

// ScopeName returns the grammar's scope name.
func (g *Grammar) ScopeName() string {
	return g.scopeName
}

// FilePatterns returns the file patterns.
func (g *Grammar) FilePatterns() []string {
	return g.filePatterns
}

// scoped appends the language suffix to a scope name.
func (g *Grammar) scoped(name string) string {
	if g.suffix == "" {
		return name
	}
	return name + "." + g.suffix
}

// hasAt reports whether runes at i start with s.
func hasAt(line []rune, i int, s string) bool {
	if s == "" {
		return false
	}
	j := i
	for _, r := range s {
		if j >= len(line) || line[j] != r {
			return false
		}
		j++
	}
	return true
}

func runeLen(s string) int {
	return len([]rune(s))
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
