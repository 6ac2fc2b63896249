package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeymapEnter(t *testing.T) {
	km := DefaultKeymap()

	b, ok := km.Lookup(MustParse("enter"))
	require.True(t, ok)
	assert.Equal(t, Binding{Key: "enter", Action: ActionSplitString, Fallback: ActionInsertNewline}, b)

	b, ok = km.Lookup(MustParse("shift+enter"))
	require.True(t, ok)
	assert.Equal(t, ActionInsertNewline, b.Action)
	assert.Empty(t, b.Fallback)
}

func TestKeymapResolve(t *testing.T) {
	km := DefaultKeymap()

	a, _, ok := km.Resolve(MustParse("x"))
	require.True(t, ok)
	assert.Equal(t, ActionInsertText, a.Name)
	assert.Equal(t, "x", a.Args.Text)

	a, _, ok = km.Resolve(MustParse("space"))
	require.True(t, ok)
	assert.Equal(t, " ", a.Args.Text)

	a, b, ok := km.Resolve(MustParse("ctrl+s"))
	require.True(t, ok)
	assert.Equal(t, ActionSave, a.Name)
	assert.Equal(t, "ctrl+s", b.Key)

	_, _, ok = km.Resolve(MustParse("ctrl+y"))
	assert.False(t, ok)
	_, _, ok = km.Resolve(MustParse("tab"))
	assert.False(t, ok)
}

func TestKeymapBindUnbind(t *testing.T) {
	km := NewKeymap()
	require.NoError(t, km.Bind("Ctrl+Enter", ActionSplitString, ""))
	assert.Error(t, km.Bind("ctrl+enter", "", ""))
	assert.ErrorIs(t, km.Bind("bogus+key", "x", ""), ErrInvalidSpec)

	bindings := km.Bindings()
	require.Len(t, bindings, 1)
	assert.Equal(t, "ctrl+enter", bindings[0].Key)

	require.NoError(t, km.Unbind("ctrl+enter"))
	assert.Empty(t, km.Bindings())
	assert.Error(t, km.Unbind(""))
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"shift enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModShift), "shift+enter"},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "q"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift), "Q"},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModCtrl), "ctrl+s"},
		{"ctrl key", tcell.NewEventKey(tcell.KeyCtrlJ, 0, tcell.ModCtrl), "ctrl+j"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt), "alt+left"},
		{"unknown", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromTcell(tt.ev).String())
		})
	}
}

func TestTcellRoundTrip(t *testing.T) {
	for _, spec := range []string{"enter", "shift+enter", "ctrl+s", "ctrl+j", "a", "escape", "backspace", "up", "end"} {
		ev := MustParse(spec)
		tev := ToTcell(ev)
		require.NotNil(t, tev, spec)
		assert.Equal(t, ev, FromTcell(tev), spec)
	}
	assert.Nil(t, ToTcell(KeyEvent{}))
}
