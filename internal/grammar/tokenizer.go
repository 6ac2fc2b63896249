package grammar

import (
	"slices"
	"unicode"

	"github.com/dshills/splitstring/internal/scope"
)

type frameKind uint8

const (
	frameNone frameKind = iota
	frameTag
	frameChildren
	frameExpr
)

type frame struct {
	kind    frameKind
	closing bool
	depth   int
}

// State is the scanner state carried from the end of one line to the
// start of the next. The zero value is the state at the top of a file.
type State struct {
	frames []frame
	str    int // 1-based index of an open multi-line string rule
	block  bool
}

// Equal reports whether two states are identical.
func (s State) Equal(o State) bool {
	return s.str == o.str && s.block == o.block && slices.Equal(s.frames, o.frames)
}

func (s State) clone() State {
	s.frames = slices.Clone(s.frames)
	return s
}

// Line holds the scopes of every rune in one line.
type Line struct {
	scopes []scope.Stack
	end    scope.Stack
}

// At returns the scopes of the rune at col. Columns at or past the end of
// the line get the scopes carried past the last rune.
func (l Line) At(col int) scope.Stack {
	if col >= 0 && col < len(l.scopes) {
		return l.scopes[col]
	}
	return l.end
}

// Len returns the number of runes in the line.
func (l Line) Len() int {
	return len(l.scopes)
}

// TokenizeLine scopes one line given the state at its start and returns the
// state at its end.
func (g *Grammar) TokenizeLine(text string, prev State) (Line, State) {
	s := &scanner{
		g:      g,
		line:   []rune(text),
		frames: slices.Clone(prev.frames),
		str:    prev.str - 1,
		block:  prev.block,
	}
	s.out = make([]scope.Stack, len(s.line))
	s.base = g.base(s.frames)

	for i := 0; i < len(s.line); {
		switch {
		case s.str >= 0:
			i = s.inString(i)
		case s.block:
			i = s.inBlock(i)
		default:
			i = s.code(i)
		}
	}

	if s.str >= 0 && !g.strings[s.str].MultiLine {
		s.str = -1
	}

	end := s.base
	switch {
	case s.str >= 0:
		end = end.With(g.scoped(g.strings[s.str].Scope))
	case s.block:
		end = end.With(g.scoped("comment.block"))
	}

	return Line{scopes: s.out, end: end}, State{frames: s.frames, str: s.str + 1, block: s.block}
}

// base returns the scopes present everywhere inside the given frames.
func (g *Grammar) base(frames []frame) scope.Stack {
	out := make(scope.Stack, 0, len(g.rootScopes)+2*len(frames))
	out = append(out, g.rootScopes...)
	for _, f := range frames {
		switch f.kind {
		case frameTag:
			out = append(out, "meta.tag.jsx")
		case frameExpr:
			out = append(out, g.scoped("meta.embedded.expression"), g.scopeName)
		}
	}
	return out
}

type scanner struct {
	g      *Grammar
	line   []rune
	out    []scope.Stack
	frames []frame
	base   scope.Stack
	str    int
	block  bool
}

func (s *scanner) set(i int, extra ...string) {
	if i < len(s.out) {
		s.out[i] = s.base.With(extra...)
	}
}

func (s *scanner) setRun(i, n int, extra ...string) {
	for k := 0; k < n; k++ {
		s.set(i+k, extra...)
	}
}

func (s *scanner) push(f frame) {
	s.frames = append(s.frames, f)
	s.base = s.g.base(s.frames)
}

func (s *scanner) pop() frame {
	if len(s.frames) == 0 {
		return frame{}
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.base = s.g.base(s.frames)
	return f
}

func (s *scanner) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *scanner) inString(i int) int {
	g := s.g
	rule := g.strings[s.str]
	str := g.scoped(rule.Scope)

	if rule.Escape != 0 && s.line[i] == rule.Escape && i+1 < len(s.line) {
		esc := g.scoped("constant.character.escape")
		s.setRun(i, 2, str, esc)
		return i + 2
	}
	if hasAt(s.line, i, rule.Close) {
		n := runeLen(rule.Close)
		s.setRun(i, n, str, g.scoped("punctuation.definition.string.end"))
		s.str = -1
		return i + n
	}
	s.set(i, str)
	return i + 1
}

func (s *scanner) inBlock(i int) int {
	g := s.g
	c := g.scoped("comment.block")
	if hasAt(s.line, i, g.blockClose) {
		n := runeLen(g.blockClose)
		s.setRun(i, n, c, g.scoped("punctuation.definition.comment"))
		s.block = false
		return i + n
	}
	s.set(i, c)
	return i + 1
}

func (s *scanner) code(i int) int {
	g := s.g

	if g.jsx {
		if next, ok := s.jsx(i); ok {
			return next
		}
		if f := s.top(); f != nil && f.kind == frameChildren {
			// JSX text has no strings or comments.
			s.set(i)
			return i + 1
		}
	}

	if hasAt(s.line, i, g.blockOpen) {
		n := runeLen(g.blockOpen)
		s.setRun(i, n, g.scoped("comment.block"), g.scoped("punctuation.definition.comment"))
		s.block = true
		return i + n
	}

	for _, marker := range g.lineComments {
		if hasAt(s.line, i, marker) {
			c := g.scoped("comment.line")
			s.setRun(i, len(s.line)-i, c)
			return len(s.line)
		}
	}

	for idx, rule := range g.strings {
		if hasAt(s.line, i, rule.Open) {
			n := runeLen(rule.Open)
			s.setRun(i, n, g.scoped(rule.Scope), g.scoped("punctuation.definition.string.begin"))
			s.str = idx
			return i + n
		}
	}

	s.set(i)
	return i + 1
}

// jsx handles tag and expression delimiters. It returns false when the rune
// at i should be scanned as ordinary code.
func (s *scanner) jsx(i int) (int, bool) {
	r := s.line[i]
	f := s.top()

	kind := frameNone
	if f != nil {
		kind = f.kind
	}

	switch kind {
	case frameTag:
		switch {
		case r == '{':
			s.set(i, "punctuation.section.embedded.begin.jsx")
			s.push(frame{kind: frameExpr})
			return i + 1, true
		case hasAt(s.line, i, "/>"):
			s.setRun(i, 2)
			s.pop()
			return i + 2, true
		case r == '>':
			s.set(i)
			if tag := s.pop(); !tag.closing {
				s.push(frame{kind: frameChildren})
			}
			return i + 1, true
		}
		return 0, false

	case frameChildren:
		switch {
		case r == '{':
			s.set(i, "punctuation.section.embedded.begin.jsx")
			s.push(frame{kind: frameExpr})
			return i + 1, true
		case hasAt(s.line, i, "</"):
			s.pop()
			s.push(frame{kind: frameTag, closing: true})
			s.set(i)
			return i + 1, true
		case r == '<':
			s.push(frame{kind: frameTag})
			s.set(i)
			return i + 1, true
		}
		return 0, false

	case frameExpr:
		switch r {
		case '{':
			f.depth++
		case '}':
			if f.depth == 0 {
				s.pop()
				s.set(i, "punctuation.section.embedded.end.jsx")
				return i + 1, true
			}
			f.depth--
		}
	}

	if r == '<' && s.looksLikeTag(i) {
		s.push(frame{kind: frameTag, closing: hasAt(s.line, i, "</")})
		s.set(i)
		return i + 1, true
	}
	return 0, false
}

// tagKeywords may directly precede a JSX element.
var tagKeywords = map[string]bool{
	"return":  true,
	"yield":   true,
	"await":   true,
	"case":    true,
	"default": true,
}

// looksLikeTag distinguishes "<div" from a less-than comparison.
func (s *scanner) looksLikeTag(i int) bool {
	if i+1 >= len(s.line) {
		return false
	}
	next := s.line[i+1]
	if next != '/' && next != '>' && !unicode.IsLetter(next) {
		return false
	}

	j := i - 1
	for j >= 0 && unicode.IsSpace(s.line[j]) {
		j--
	}
	if j < 0 {
		return true
	}
	prev := s.line[j]
	if prev == ')' || prev == ']' {
		return false
	}
	if !isIdentRune(prev) {
		return true
	}

	end := j + 1
	for j >= 0 && isIdentRune(s.line[j]) {
		j--
	}
	return tagKeywords[string(s.line[j+1:end])]
}
