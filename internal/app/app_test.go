package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/splitstring/internal/config"
	"github.com/dshills/splitstring/internal/grammar"
	"github.com/dshills/splitstring/internal/input"
	"github.com/dshills/splitstring/internal/scope"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 6)
	t.Cleanup(s.Fini)
	return s
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func press(t *testing.T, app *Application, specs ...string) error {
	t.Helper()
	for _, spec := range specs {
		if err := app.HandleEvent(input.ToTcell(input.MustParse(spec))); err != nil {
			return err
		}
	}
	return nil
}

func typeText(t *testing.T, app *Application, text string) {
	t.Helper()
	for _, r := range text {
		require.NoError(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}
}

func screenRow(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y) //nolint:staticcheck
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " \x00")
}

func TestNewPicksGrammarFromPath(t *testing.T) {
	path := writeFile(t, "a.php", `<?php $a = 'x';`)

	app, err := New(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "php", app.Document().Grammar().Name())
	assert.Equal(t, `<?php $a = 'x';`, app.Document().Text())
}

func TestNewMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.js")

	app, err := New(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "", app.Document().Text())
	assert.Equal(t, "new file", app.Status())
}

func TestEnterSplitsString(t *testing.T) {
	path := writeFile(t, "a.js", "  x = 'hello world';")
	app, err := New(Options{Path: path, Screen: newScreen(t)})
	require.NoError(t, err)
	require.NoError(t, app.Document().SetCursor(scope.Position{Column: 13}))

	require.NoError(t, press(t, app, "enter"))
	assert.Equal(t, "  x = 'hello ' +\n  'world';", app.Document().Text())
	assert.Equal(t, "split string", app.Status())

	require.NoError(t, press(t, app, "end", "enter"))
	assert.Equal(t, "  x = 'hello ' +\n  'world';\n", app.Document().Text())
	assert.Equal(t, "cursor at end of line", app.Status())
}

func TestEnterHonorsScopedConfig(t *testing.T) {
	store := config.NewStore()
	require.NoError(t, store.Load(map[string]any{
		config.Section: map[string]any{"connector": " .."},
	}))

	app, err := New(Options{Grammar: grammar.Lua(), Store: store, Screen: newScreen(t)})
	require.NoError(t, err)
	typeText(t, app, `s = "abcd"`)
	require.NoError(t, press(t, app, "left", "left", "left", "enter"))

	assert.Equal(t, "s = \"ab\" ..\n\"cd\"", app.Document().Text())
}

func TestEditingKeys(t *testing.T) {
	app, err := New(Options{Screen: newScreen(t)})
	require.NoError(t, err)

	typeText(t, app, "abc")
	require.NoError(t, press(t, app, "backspace", "home", "shift+enter"))
	assert.Equal(t, "\nab", app.Document().Text())
	assert.Equal(t, scope.Position{Row: 1}, app.Document().CursorPosition())
}

func TestSaveAndQuit(t *testing.T) {
	path := writeFile(t, "a.js", "x")
	app, err := New(Options{Path: path, Screen: newScreen(t)})
	require.NoError(t, err)

	typeText(t, app, "y")
	require.NoError(t, press(t, app, "ctrl+q"))
	assert.Equal(t, ErrUnsavedChanges.Error(), app.Status())

	require.NoError(t, press(t, app, "ctrl+s"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "yx", string(data))
	assert.False(t, app.Document().Modified())

	assert.ErrorIs(t, press(t, app, "ctrl+q"), ErrQuit)
}

func TestQuitTwiceDiscards(t *testing.T) {
	app, err := New(Options{Screen: newScreen(t)})
	require.NoError(t, err)

	typeText(t, app, "z")
	require.NoError(t, press(t, app, "escape"))
	assert.ErrorIs(t, press(t, app, "escape"), ErrQuit)
}

func TestSaveScratch(t *testing.T) {
	app, err := New(Options{Screen: newScreen(t)})
	require.NoError(t, err)

	require.NoError(t, press(t, app, "ctrl+s"))
	assert.Equal(t, ErrNoFilePath.Error(), app.Status())
	assert.ErrorIs(t, app.Save(), ErrNoFilePath)
}

func TestRender(t *testing.T) {
	screen := newScreen(t)
	path := writeFile(t, "a.js", "a = 'b'\nc")
	app, err := New(Options{Path: path, Screen: screen})
	require.NoError(t, err)

	app.Render()
	assert.Equal(t, "a = 'b'", screenRow(screen, 0))
	assert.Equal(t, "c", screenRow(screen, 1))

	status := screenRow(screen, 5)
	assert.Contains(t, status, "a.js")
	assert.Contains(t, status, "1:1")
	assert.Contains(t, status, "javascript")

	_, _, str, _ := screen.GetContent(4, 0)   //nolint:staticcheck
	_, _, plain, _ := screen.GetContent(0, 0) //nolint:staticcheck
	assert.NotEqual(t, plain, str, "strings are colored")
}

func TestRenderScrolls(t *testing.T) {
	screen := newScreen(t)
	app, err := New(Options{Screen: screen})
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		typeText(t, app, string(rune('a'+i)))
		require.NoError(t, press(t, app, "shift+enter"))
	}
	app.Render()

	assert.Equal(t, "e", screenRow(screen, 0))
	assert.Equal(t, "", screenRow(screen, 4))
}

func TestRunLoop(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	app, err := New(Options{Screen: screen})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	require.Eventually(t, app.IsRunning, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, app.Run(), ErrAlreadyRunning)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	app.Shutdown()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, "q", app.Document().Text())
	assert.False(t, app.IsRunning())
}

func TestConfigReload(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "splitstring.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[splitString]\nconnector = \" +\"\n"), 0o644))

	store := config.NewStore()
	require.NoError(t, store.LoadSources(config.Sources{Path: cfgPath}))

	screen := tcell.NewSimulationScreen("UTF-8")
	app, err := New(Options{Screen: screen, Store: store, WatchConfig: true})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	require.Eventually(t, app.IsRunning, time.Second, 5*time.Millisecond)

	require.NoError(t, os.WriteFile(cfgPath, []byte("[splitString]\nconnector = \" ..\"\n"), 0o644))
	require.Eventually(t, func() bool {
		v, _ := store.Get(config.KeyConnector, nil)
		return v == " .."
	}, 3*time.Second, 20*time.Millisecond)

	app.Shutdown()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(255, 0, 16), hexColor("#ff0010"))
	assert.Equal(t, tcell.ColorDefault, hexColor("nope"))
}

func TestPaletteStyleFor(t *testing.T) {
	p := DefaultTheme().palette()

	str := p.styleFor(scope.Stack{"source.js", "string.quoted.single.js"})
	assert.Equal(t, p.scopes["string.quoted"], str)

	esc := p.styleFor(scope.Stack{"source.js", "string.quoted.single.js", "constant.character.escape.js"})
	assert.Equal(t, p.scopes["constant.character.escape"], esc)

	assert.Equal(t, p.text, p.styleFor(scope.Stack{"source.js"}))
}
