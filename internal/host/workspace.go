package host

import "sync"

// MemoryWorkspace is a Workspace holding at most one active document.
type MemoryWorkspace struct {
	mu     sync.RWMutex
	active *Document
}

// NewMemoryWorkspace creates a workspace with doc active. doc may be nil.
func NewMemoryWorkspace(doc *Document) *MemoryWorkspace {
	return &MemoryWorkspace{active: doc}
}

// SetActive changes the active document.
func (w *MemoryWorkspace) SetActive(doc *Document) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = doc
}

// ActiveDocument returns the active document or nil.
func (w *MemoryWorkspace) ActiveDocument() *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.active
}

// ActiveEditor implements Workspace. It returns a nil interface, not a
// typed nil, when no document is active.
func (w *MemoryWorkspace) ActiveEditor() Editor {
	doc := w.ActiveDocument()
	if doc == nil {
		return nil
	}
	return doc
}
