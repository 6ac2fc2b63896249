// Package app provides the interactive editor: a terminal loop where Enter
// inside a quoted string splits it, wired together from the document host,
// the dispatcher, the keymap and the live config store.
package app

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/splitstring/internal/config"
	"github.com/dshills/splitstring/internal/config/watcher"
	"github.com/dshills/splitstring/internal/dispatcher"
	"github.com/dshills/splitstring/internal/dispatcher/handlers/cursor"
	"github.com/dshills/splitstring/internal/dispatcher/handlers/editor"
	"github.com/dshills/splitstring/internal/dispatcher/handlers/split"
	"github.com/dshills/splitstring/internal/grammar"
	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/input"
	"github.com/dshills/splitstring/internal/logging"
)

// Options configures the application.
type Options struct {
	// Path is the file to edit. A missing file starts empty and is created
	// on save; an empty path is a scratch buffer that cannot be saved.
	Path string

	// Grammar scopes the buffer. Nil picks one from Path, falling back to
	// JavaScript.
	Grammar *grammar.Grammar

	// Store supplies settings. Nil means defaults only.
	Store *config.Store

	// Keymap maps keys to actions. Nil means input.DefaultKeymap.
	Keymap *input.Keymap

	// Screen is the terminal. Nil creates one with tcell.NewScreen.
	Screen tcell.Screen

	// Theme colors the buffer. The zero value means DefaultTheme.
	Theme *Theme

	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger

	// WatchConfig reloads the store when its config file changes.
	WatchConfig bool
}

// Application is the editor. Methods other than Run and Shutdown must be
// called from the goroutine running the loop.
type Application struct {
	mu sync.Mutex

	screen     tcell.Screen
	doc        *host.Document
	workspace  *host.MemoryWorkspace
	store      *config.Store
	keymap     *input.Keymap
	dispatcher *dispatcher.Dispatcher
	watcher    *watcher.Watcher
	logger     *logging.Logger
	palette    palette

	// topRow is the first buffer row on screen.
	topRow int

	status      string
	statusError bool

	// quitArmed is set after a quit was refused for unsaved changes.
	quitArmed bool

	// running guards Run; active is set while the screen is live.
	running atomic.Bool
	active  atomic.Bool

	opts Options
}

// New creates an Application and loads its file.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:   opts,
		store:  opts.Store,
		keymap: opts.Keymap,
		logger: opts.Logger,
		screen: opts.Screen,
	}
	if app.store == nil {
		app.store = config.NewStore()
	}
	if app.keymap == nil {
		app.keymap = input.DefaultKeymap()
	}
	if app.logger == nil {
		app.logger = logging.Nop()
	}
	app.logger = app.logger.WithComponent("app")

	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	app.palette = theme.palette()

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap loads the document and wires the dispatcher.
func (app *Application) bootstrap() error {
	g := app.opts.Grammar
	if g == nil {
		g = grammar.JavaScript()
		if app.opts.Path != "" {
			if found, err := grammar.DefaultRegistry().ForPath(app.opts.Path); err == nil {
				g = found
			}
		}
	}

	text := ""
	if app.opts.Path != "" {
		data, err := os.ReadFile(app.opts.Path)
		switch {
		case err == nil:
			text = string(data)
		case errors.Is(err, fs.ErrNotExist):
			app.setStatus("new file")
		default:
			return &FileError{Op: "open", Path: app.opts.Path, Err: err}
		}
	}

	app.doc = host.NewDocument(app.opts.Path, text, g)
	app.workspace = host.NewMemoryWorkspace(app.doc)

	app.dispatcher = dispatcher.NewWithDefaults()
	app.dispatcher.SetWorkspace(app.workspace)
	app.dispatcher.SetSettings(app.store)
	app.dispatcher.SetLogger(app.logger)
	app.dispatcher.RegisterNamespace(editor.New())
	app.dispatcher.RegisterNamespace(cursor.New())
	split.Register(app.dispatcher)

	app.logger.Debug("opened %q with grammar %s", app.opts.Path, g.Name())
	return nil
}

// Document returns the buffer being edited.
func (app *Application) Document() *host.Document {
	return app.doc
}

// Dispatcher returns the action dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Status returns the status line message.
func (app *Application) Status() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.status
}

// IsRunning reports whether Run has initialized the screen and is
// processing events.
func (app *Application) IsRunning() bool {
	return app.active.Load()
}

func (app *Application) setStatus(msg string) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.status = msg
	app.statusError = false
}

func (app *Application) setError(err error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.status = err.Error()
	app.statusError = true
}
