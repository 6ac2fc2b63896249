package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Key identifies a keyboard key. Character keys use KeyRune.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
}

var keyAliases = map[string]Key{
	"return": KeyEnter,
	"cr":     KeyEnter,
	"esc":    KeyEscape,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
}

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

var modNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModMeta, "meta"},
	{ModShift, "shift"},
}

func modifierFromName(name string) Modifier {
	switch name {
	case "ctrl", "control", "c":
		return ModCtrl
	case "alt", "option", "opt", "a":
		return ModAlt
	case "meta", "cmd", "super", "m":
		return ModMeta
	case "shift", "s":
		return ModShift
	}
	return ModNone
}

// KeyEvent is a single key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// String returns the canonical specification, e.g. "ctrl+s" or "shift+enter".
// Parse(e.String()) yields e.
func (e KeyEvent) String() string {
	var b strings.Builder
	for _, m := range modNames {
		if e.Mods.Has(m.mod) {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	switch e.Key {
	case KeyRune:
		switch e.Rune {
		case ' ':
			b.WriteString("space")
		case '+':
			b.WriteString("plus")
		default:
			b.WriteRune(e.Rune)
		}
	case KeyNone:
		b.WriteString("none")
	default:
		b.WriteString(keyNames[e.Key])
	}
	return b.String()
}

// Parse parses a key specification such as "enter", "ctrl+s", "shift+enter",
// "a" or "space". Names are case-insensitive; a single character is taken
// as written, except that it is lowered under ctrl, alt or meta.
func Parse(spec string) (KeyEvent, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return KeyEvent{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := modifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if mod == ModNone {
			return KeyEvent{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods |= mod
	}

	name := strings.TrimSpace(parts[len(parts)-1])
	if name == "" {
		return KeyEvent{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if mods.Has(ModCtrl) || mods.Has(ModAlt) || mods.Has(ModMeta) {
			r = toLower(r)
		}
		return KeyEvent{Key: KeyRune, Rune: r, Mods: mods}, nil
	}

	lower := strings.ToLower(name)
	switch lower {
	case "space":
		return KeyEvent{Key: KeyRune, Rune: ' ', Mods: mods}, nil
	case "plus":
		return KeyEvent{Key: KeyRune, Rune: '+', Mods: mods}, nil
	}
	if k, ok := keyAliases[lower]; ok {
		return KeyEvent{Key: k, Mods: mods}, nil
	}
	for k, n := range keyNames {
		if n == lower {
			return KeyEvent{Key: k, Mods: mods}, nil
		}
	}

	return KeyEvent{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) KeyEvent {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
