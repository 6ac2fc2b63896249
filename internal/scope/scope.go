// Package scope defines buffer positions and scope stacks.
//
// A scope stack is the ordered list of syntactic context labels at a buffer
// position, outermost first, in TextMate naming ("source.js",
// "string.quoted.single.js", ...). Stacks are produced by a grammar and only
// ever read by consumers; nothing in this package reorders them.
package scope

import (
	"fmt"
	"strconv"
	"strings"
)

// Position identifies a location within a line of text.
// Row is the 0-based line index and Column the 0-based rune index.
type Position struct {
	Row    int
	Column int
}

// String returns the position as "row:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Before returns the position one column to the left.
// The column never goes below zero.
func (p Position) Before() Position {
	if p.Column == 0 {
		return p
	}
	return Position{Row: p.Row, Column: p.Column - 1}
}

// ParsePosition parses a "row:column" string.
func ParsePosition(s string) (Position, error) {
	row, col, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Position{}, fmt.Errorf("invalid position %q: want row:column", s)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	if r < 0 || c < 0 {
		return Position{}, fmt.Errorf("invalid position %q: negative component", s)
	}
	return Position{Row: r, Column: c}, nil
}

// Stack is an ordered sequence of scope labels, outermost to innermost.
type Stack []string

// Contains reports whether any label equals name exactly.
func (s Stack) Contains(name string) bool {
	for _, label := range s {
		if label == name {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any label is a member of names.
func (s Stack) ContainsAny(names []string) bool {
	for _, name := range names {
		if s.Contains(name) {
			return true
		}
	}
	return false
}

// HasPrefix reports whether any label starts with prefix.
func (s Stack) HasPrefix(prefix string) bool {
	for _, label := range s {
		if strings.HasPrefix(label, prefix) {
			return true
		}
	}
	return false
}

// LastIndex returns the index of the last label equal to name, or -1.
func (s Stack) LastIndex(name string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == name {
			return i
		}
	}
	return -1
}

// Innermost returns the innermost label, or "" for an empty stack.
func (s Stack) Innermost() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// Clone returns a copy of the stack that shares no memory with s.
func (s Stack) Clone() Stack {
	if s == nil {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// With returns a new stack with labels appended.
func (s Stack) With(labels ...string) Stack {
	out := make(Stack, 0, len(s)+len(labels))
	out = append(out, s...)
	return append(out, labels...)
}

// String joins the labels with spaces, outermost first.
func (s Stack) String() string {
	return strings.Join(s, " ")
}
