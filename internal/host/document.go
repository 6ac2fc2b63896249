package host

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/splitstring/internal/grammar"
	"github.com/dshills/splitstring/internal/scope"
)

// Document is an in-memory text buffer with cursors and a grammar.
type Document struct {
	mu sync.RWMutex

	path     string
	lines    []string
	cursors  []scope.Position
	readOnly bool
	modified bool
	scopes   *grammar.Provider
}

// NewDocument creates a document from text with a single cursor at 0:0.
// Line terminators are "\n"; a trailing "\r" on each line is dropped.
func NewDocument(path, text string, g *grammar.Grammar) *Document {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	d := &Document{
		path:    path,
		lines:   lines,
		cursors: []scope.Position{{}},
	}
	d.scopes = grammar.NewProvider(g, lineSource{d})
	return d
}

// lineSource lets the scope provider read lines while the caller holds mu.
type lineSource struct{ d *Document }

func (s lineSource) LineCount() int          { return len(s.d.lines) }
func (s lineSource) LineText(row int) string { return s.d.lines[row] }

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Grammar returns the document grammar.
func (d *Document) Grammar() *grammar.Grammar {
	return d.scopes.Grammar()
}

// SetReadOnly marks the document read-only.
func (d *Document) SetReadOnly(ro bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readOnly = ro
}

// Modified reports whether the document changed since it was created.
func (d *Document) Modified() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modified
}

// Text returns the whole document.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return strings.Join(d.lines, "\n")
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lines)
}

// LineText implements Editor. Rows outside the document yield "".
func (d *Document) LineText(row int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return d.lines[row]
}

// CursorCount implements Editor.
func (d *Document) CursorCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.cursors)
}

// CursorPosition implements Editor.
func (d *Document) CursorPosition() scope.Position {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if len(d.cursors) == 0 {
		return scope.Position{}
	}
	return d.cursors[0]
}

// SetCursor replaces all cursors with one at pos.
func (d *Document) SetCursor(pos scope.Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkPosition(pos); err != nil {
		return err
	}
	d.cursors = []scope.Position{pos}
	return nil
}

// AddCursor adds a secondary cursor.
func (d *Document) AddCursor(pos scope.Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkPosition(pos); err != nil {
		return err
	}
	d.cursors = append(d.cursors, pos)
	return nil
}

// MoveCursor moves the primary cursor by the given deltas, clamping to the
// document. Secondary cursors are dropped.
func (d *Document) MoveCursor(dRow, dCol int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pos := scope.Position{}
	if len(d.cursors) > 0 {
		pos = d.cursors[0]
	}
	pos.Row = clamp(pos.Row+dRow, 0, len(d.lines)-1)
	pos.Column = clamp(pos.Column+dCol, 0, runeCount(d.lines[pos.Row]))
	d.cursors = []scope.Position{pos}
}

// ScopesAt implements Editor.
func (d *Document) ScopesAt(pos scope.Position) scope.Stack {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.scopes.ScopesAt(pos)
}

// InsertText implements Editor. The text may contain newlines.
func (d *Document) InsertText(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.readOnly {
		return ErrReadOnly
	}
	if len(d.cursors) == 0 {
		return ErrNoCursor
	}
	pos := d.cursors[0]
	if err := d.checkPosition(pos); err != nil {
		return err
	}

	runes := []rune(d.lines[pos.Row])
	head, tail := string(runes[:pos.Column]), string(runes[pos.Column:])

	parts := strings.Split(text, "\n")
	last := len(parts) - 1

	newLines := make([]string, 0, len(parts))
	newLines = append(newLines, head+parts[0])
	newLines = append(newLines, parts[1:]...)
	endCol := runeCount(newLines[last])
	newLines[last] += tail

	lines := make([]string, 0, len(d.lines)+last)
	lines = append(lines, d.lines[:pos.Row]...)
	lines = append(lines, newLines...)
	lines = append(lines, d.lines[pos.Row+1:]...)
	d.lines = lines

	d.cursors = []scope.Position{{Row: pos.Row + last, Column: endCol}}
	d.modified = true
	d.scopes.Invalidate(pos.Row)
	return nil
}

// DeleteBackward removes the rune before the primary cursor. At column 0
// the line is joined onto the previous one; at 0:0 nothing happens.
func (d *Document) DeleteBackward() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.readOnly {
		return ErrReadOnly
	}
	if len(d.cursors) == 0 {
		return ErrNoCursor
	}
	pos := d.cursors[0]
	if err := d.checkPosition(pos); err != nil {
		return err
	}

	switch {
	case pos.Column > 0:
		runes := []rune(d.lines[pos.Row])
		d.lines[pos.Row] = string(runes[:pos.Column-1]) + string(runes[pos.Column:])
		pos.Column--
	case pos.Row > 0:
		prev := d.lines[pos.Row-1]
		d.lines[pos.Row-1] = prev + d.lines[pos.Row]
		d.lines = append(d.lines[:pos.Row], d.lines[pos.Row+1:]...)
		pos = scope.Position{Row: pos.Row - 1, Column: runeCount(prev)}
	default:
		return nil
	}

	d.cursors = []scope.Position{pos}
	d.modified = true
	d.scopes.Invalidate(pos.Row)
	return nil
}

// MarkSaved clears the modified flag.
func (d *Document) MarkSaved() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modified = false
}

func (d *Document) checkPosition(pos scope.Position) error {
	if pos.Row < 0 || pos.Row >= len(d.lines) || pos.Column < 0 || pos.Column > runeCount(d.lines[pos.Row]) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}
	return nil
}

func runeCount(s string) int {
	return len([]rune(s))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
