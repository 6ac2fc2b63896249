package splitter

import "github.com/dshills/splitstring/internal/scope"

// Scope prefixes that identify quoted string literals.
const (
	ScopeSingleQuoted = "string.quoted.single"
	ScopeDoubleQuoted = "string.quoted.double"
)

// Kind identifies the quote style enclosing a position.
type Kind uint8

const (
	// KindNone means the position is not inside a quoted string.
	KindNone Kind = iota
	// KindSingle means a single-quoted string.
	KindSingle
	// KindDouble means a double-quoted string.
	KindDouble
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindDouble:
		return "double"
	default:
		return "none"
	}
}

// Quote returns the delimiter for the kind, or 0 for KindNone.
func (k Kind) Quote() rune {
	switch k {
	case KindSingle:
		return '\''
	case KindDouble:
		return '"'
	default:
		return 0
	}
}

// Classify returns the string kind for a scope stack.
// Single wins when both prefixes are present.
func Classify(scopes scope.Stack) Kind {
	if scopes.HasPrefix(ScopeSingleQuoted) {
		return KindSingle
	}
	if scopes.HasPrefix(ScopeDoubleQuoted) {
		return KindDouble
	}
	return KindNone
}
