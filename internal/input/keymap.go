package input

import (
	"fmt"
	"sort"
	"sync"
)

// Action names bound by the default keymap.
const (
	ActionSplitString    = "editor.splitString"
	ActionInsertNewline  = "editor.insertNewline"
	ActionInsertText     = "editor.insertText"
	ActionDeleteBackward = "editor.deleteBackward"
	ActionCursorUp       = "cursor.moveUp"
	ActionCursorDown     = "cursor.moveDown"
	ActionCursorLeft     = "cursor.moveLeft"
	ActionCursorRight    = "cursor.moveRight"
	ActionLineStart      = "cursor.lineStart"
	ActionLineEnd        = "cursor.lineEnd"
	ActionSave           = "file.save"
	ActionQuit           = "app.quit"
)

// Binding maps a key to an action.
type Binding struct {
	// Key is the canonical key specification.
	Key string
	// Action runs when the key is pressed.
	Action string
	// Fallback runs when Action aborts. Empty for none.
	Fallback string
}

// Keymap holds key bindings. It is safe for concurrent use.
type Keymap struct {
	mu       sync.RWMutex
	bindings map[KeyEvent]Binding
}

// NewKeymap returns an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[KeyEvent]Binding)}
}

// DefaultKeymap returns the bindings of the interactive editor.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	for _, b := range []Binding{
		{Key: "enter", Action: ActionSplitString, Fallback: ActionInsertNewline},
		{Key: "shift+enter", Action: ActionInsertNewline},
		{Key: "ctrl+j", Action: ActionInsertNewline},
		{Key: "backspace", Action: ActionDeleteBackward},
		{Key: "up", Action: ActionCursorUp},
		{Key: "down", Action: ActionCursorDown},
		{Key: "left", Action: ActionCursorLeft},
		{Key: "right", Action: ActionCursorRight},
		{Key: "home", Action: ActionLineStart},
		{Key: "end", Action: ActionLineEnd},
		{Key: "ctrl+s", Action: ActionSave},
		{Key: "ctrl+q", Action: ActionQuit},
		{Key: "escape", Action: ActionQuit},
	} {
		// Specs above are fixed and valid.
		_ = km.Bind(b.Key, b.Action, b.Fallback)
	}
	return km
}

// Bind binds spec to action with an optional fallback, replacing any
// existing binding for the key.
func (km *Keymap) Bind(spec, action, fallback string) error {
	ev, err := Parse(spec)
	if err != nil {
		return err
	}
	if action == "" {
		return fmt.Errorf("binding %s: empty action", spec)
	}

	km.mu.Lock()
	defer km.mu.Unlock()
	km.bindings[ev] = Binding{Key: ev.String(), Action: action, Fallback: fallback}
	return nil
}

// Unbind removes the binding for spec.
func (km *Keymap) Unbind(spec string) error {
	ev, err := Parse(spec)
	if err != nil {
		return err
	}

	km.mu.Lock()
	defer km.mu.Unlock()
	delete(km.bindings, ev)
	return nil
}

// Lookup returns the binding for ev.
func (km *Keymap) Lookup(ev KeyEvent) (Binding, bool) {
	km.mu.RLock()
	defer km.mu.RUnlock()
	b, ok := km.bindings[ev]
	return b, ok
}

// Resolve returns the action for a key press. Printable runes without
// ctrl, alt or meta that have no binding insert themselves.
func (km *Keymap) Resolve(ev KeyEvent) (Action, Binding, bool) {
	if b, ok := km.Lookup(ev); ok {
		return Action{Name: b.Action, Source: SourceKeyboard}, b, true
	}

	if ev.Key == KeyRune && !ev.Mods.Has(ModCtrl) && !ev.Mods.Has(ModAlt) && !ev.Mods.Has(ModMeta) {
		a := Action{
			Name:   ActionInsertText,
			Args:   ActionArgs{Text: string(ev.Rune)},
			Source: SourceKeyboard,
		}
		return a, Binding{Key: ev.String(), Action: ActionInsertText}, true
	}

	return Action{}, Binding{}, false
}

// Bindings returns all bindings sorted by key.
func (km *Keymap) Bindings() []Binding {
	km.mu.RLock()
	defer km.mu.RUnlock()

	out := make([]Binding, 0, len(km.bindings))
	for _, b := range km.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
