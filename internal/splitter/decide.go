package splitter

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/splitstring/internal/scope"
)

// Reason explains why a Decision is or is not eligible.
type Reason uint8

const (
	ReasonEligible Reason = iota
	ReasonNotInString
	ReasonStartOfLine
	ReasonEndOfLine
	ReasonBoundary
	ReasonIgnoredScope
	ReasonMultipleCursors
	ReasonNoEditor
)

// String returns a short description.
func (r Reason) String() string {
	switch r {
	case ReasonEligible:
		return "eligible"
	case ReasonNotInString:
		return "not inside a quoted string"
	case ReasonStartOfLine:
		return "cursor at start of line"
	case ReasonEndOfLine:
		return "cursor at end of line"
	case ReasonBoundary:
		return "string kind differs before cursor"
	case ReasonIgnoredScope:
		return "scope is ignored"
	case ReasonMultipleCursors:
		return "multiple cursors"
	case ReasonNoEditor:
		return "no active editor"
	default:
		return "unknown"
	}
}

// Decision is the outcome of Decide.
type Decision struct {
	Eligible          bool
	Reason            Reason
	Kind              Kind
	Quote             rune
	Connector         string
	LeadingWhitespace string
}

// Ineligible returns a Decision that does nothing.
func Ineligible(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Replacement returns the text to insert for an eligible decision, or "".
func (d Decision) Replacement() string {
	if !d.Eligible {
		return ""
	}
	return BuildReplacement(d.Quote, d.Connector, d.LeadingWhitespace)
}

// Decide determines whether the string at pos should be split.
//
// scopesAt are the scopes of the rune at pos and scopesBefore those of the
// rune at pos.Column-1; scopesBefore is not consulted at the start of a line.
func Decide(pos scope.Position, line string, scopesAt, scopesBefore scope.Stack, cfg Config) Decision {
	isStart := pos.Column == 0
	isEnd := pos.Column == utf8.RuneCountInString(line)

	kindHere := Classify(scopesAt)
	kindBefore := KindNone
	if !isStart {
		kindBefore = Classify(scopesBefore)
	}

	switch {
	case isStart:
		return Ineligible(ReasonStartOfLine)
	case isEnd:
		return Ineligible(ReasonEndOfLine)
	case kindHere == KindNone:
		return Ineligible(ReasonNotInString)
	case kindBefore != kindHere:
		return Ineligible(ReasonBoundary)
	}

	if ShouldIgnoreScope(scopesAt, cfg) {
		return Ineligible(ReasonIgnoredScope)
	}

	return Decision{
		Eligible:          true,
		Reason:            ReasonEligible,
		Kind:              kindHere,
		Quote:             kindHere.Quote(),
		Connector:         ResolveConnector(scopesAt, cfg),
		LeadingWhitespace: LeadingWhitespace(line),
	}
}

// ShouldIgnoreScope reports whether the scopes suppress splitting.
func ShouldIgnoreScope(scopes scope.Stack, cfg Config) bool {
	if scopes.ContainsAny(cfg.ScopesToIgnore) {
		return true
	}
	for _, r := range cfg.Rules {
		if scopes.LastIndex(r.Inner) > scopes.LastIndex(r.Outer) {
			return true
		}
	}
	return false
}

// ResolveConnector returns the connector for the scopes. The default
// connector becomes "." in PHP and Hack; any other connector is explicit and
// returned unchanged.
func ResolveConnector(scopes scope.Stack, cfg Config) string {
	connector := cfg.Connector
	if connector == DefaultConnector && scopes.ContainsAny(dotScopes) {
		return DotConnector
	}
	return connector
}

// BuildReplacement returns quote + connector + newline + leading + quote.
func BuildReplacement(quote rune, connector, leading string) string {
	var b strings.Builder
	b.Grow(len(connector) + len(leading) + 3)
	b.WriteRune(quote)
	b.WriteString(connector)
	b.WriteByte('\n')
	b.WriteString(leading)
	b.WriteRune(quote)
	return b.String()
}

// LeadingWhitespace returns the run of whitespace at the start of line.
// Whitespace is the ECMAScript \s class: unlike unicode.IsSpace it includes
// U+FEFF and excludes U+0085.
func LeadingWhitespace(line string) string {
	rest := strings.TrimLeftFunc(line, isLineSpace)
	return line[:len(line)-len(rest)]
}

func isLineSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u1680',
		'\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
