// Package host defines the editor capabilities the split action depends on,
// and an in-memory editor implementing them.
package host

import "github.com/dshills/splitstring/internal/scope"

// Editor is the active text editor as seen by the split action.
type Editor interface {
	// CursorCount returns the number of active cursors.
	CursorCount() int

	// CursorPosition returns the primary cursor position.
	CursorPosition() scope.Position

	// LineText returns the text of row without its line terminator.
	LineText(row int) string

	// ScopesAt returns the scope stack of the rune at pos.
	ScopesAt(pos scope.Position) scope.Stack

	// InsertText inserts text at the primary cursor and moves the cursor
	// past it.
	InsertText(text string) error
}

// Settings looks up configuration values in the context of a scope stack.
type Settings interface {
	// Get returns the value of key for the given scopes.
	Get(key string, scopes scope.Stack) (any, bool)
}

// Workspace tracks the active editor.
type Workspace interface {
	// ActiveEditor returns the focused editor, or nil if there is none.
	ActiveEditor() Editor
}

// Navigator is implemented by editors whose primary cursor can be moved.
type Navigator interface {
	MoveCursor(dRow, dCol int)
	SetCursor(pos scope.Position) error
}

// Deleter is implemented by editors that can delete the rune before the
// primary cursor, joining lines at column 0.
type Deleter interface {
	DeleteBackward() error
}
