package app

import (
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/splitstring/internal/config/watcher"
)

// Save writes the buffer to its file.
func (app *Application) Save() error {
	path := app.doc.Path()
	if path == "" {
		return ErrNoFilePath
	}
	if err := os.WriteFile(path, []byte(app.doc.Text()), 0o644); err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}
	app.doc.MarkSaved()
	app.logger.Info("saved %s", path)
	return nil
}

// Quit returns ErrQuit when the editor may exit. With unsaved changes and
// force unset, the first call only warns; a second consecutive call quits.
func (app *Application) Quit(force bool) error {
	if force || !app.doc.Modified() || app.quitArmed {
		return ErrQuit
	}
	app.quitArmed = true
	app.setError(ErrUnsavedChanges)
	return nil
}

// watchConfig starts reloading the store when its file changes.
func (app *Application) watchConfig() error {
	path := app.store.Path()
	if path == "" {
		return nil
	}

	w, err := watcher.New(path, func(watcher.Event) {
		err := app.store.Reload()
		if app.screen != nil {
			_ = app.screen.PostEvent(tcell.NewEventInterrupt(configReloaded{err: err}))
		}
	}, watcher.WithErrorHandler(func(err error) {
		app.logger.Warn("config watcher: %v", err)
	}))
	if err != nil {
		return &InitError{Component: "config watcher", Err: err}
	}

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
	return nil
}

func (app *Application) stopWatching() {
	app.mu.Lock()
	w := app.watcher
	app.watcher = nil
	app.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
}

// Shutdown stops a running loop.
func (app *Application) Shutdown() {
	if app.screen != nil && app.active.Load() {
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
	}
}
