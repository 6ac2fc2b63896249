package host

import "errors"

// Errors returned by the in-memory editor.
var (
	// ErrNoCursor indicates an edit was attempted without a cursor.
	ErrNoCursor = errors.New("document has no cursor")

	// ErrOutOfRange indicates a position outside the document.
	ErrOutOfRange = errors.New("position out of range")

	// ErrReadOnly indicates an edit on a read-only document.
	ErrReadOnly = errors.New("document is read-only")
)
