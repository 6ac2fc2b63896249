package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/splitstring/internal/dispatcher"
	"github.com/dshills/splitstring/internal/dispatcher/handler"
	"github.com/dshills/splitstring/internal/input"
)

// configReloaded is posted to the screen when the watcher reloaded the
// store.
type configReloaded struct {
	err error
}

// quitRequest is posted by Shutdown.
type quitRequest struct{}

// Run initializes the screen and processes events until quit. It returns
// nil on a normal quit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return &InitError{Component: "screen", Err: err}
		}
		app.screen = screen
	}
	if err := app.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer app.screen.Fini()
	app.active.Store(true)
	defer app.active.Store(false)

	if app.opts.WatchConfig {
		if err := app.watchConfig(); err != nil {
			app.logger.Warn("config watcher: %v", err)
			app.setError(err)
		}
	}
	defer app.stopWatching()

	app.Render()
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		err := app.HandleEvent(ev)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		app.Render()
	}
}

// HandleEvent processes one terminal event. It returns ErrQuit when the
// editor should exit.
func (app *Application) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return app.handleKey(input.FromTcell(ev))
	case *tcell.EventResize:
		if app.screen != nil {
			app.screen.Sync()
		}
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case configReloaded:
			app.handleReload(data.err)
		case quitRequest:
			return ErrQuit
		}
	}
	return nil
}

func (app *Application) handleKey(ev input.KeyEvent) error {
	action, binding, ok := app.keymap.Resolve(ev)
	if !ok {
		return nil
	}

	switch action.Name {
	case input.ActionQuit:
		return app.Quit(false)
	case input.ActionSave:
		app.quitArmed = false
		if err := app.Save(); err != nil {
			app.setError(err)
			return nil
		}
		app.setStatus("saved " + app.doc.Path())
		return nil
	}

	app.quitArmed = false
	result := app.dispatcher.DispatchWithFallback(action, binding.Fallback)
	app.applyResult(action, result)
	return nil
}

// applyResult reports a dispatch outcome on the status line.
func (app *Application) applyResult(action input.Action, result handler.Result) {
	switch {
	case result.IsError():
		app.setError(result.Error)
	case result.IsAborted():
		app.setStatus(result.Message)
	case result.GetDataString(dispatcher.DataAbortReason) != "":
		app.setStatus(result.GetDataString(dispatcher.DataAbortReason))
	case action.Name == input.ActionSplitString:
		app.setStatus("split string")
	default:
		app.setStatus("")
	}
}

func (app *Application) handleReload(err error) {
	if err != nil {
		app.logger.Warn("config reload failed: %v", err)
		app.setError(err)
		return
	}
	app.logger.Info("config reloaded from %s", app.store.Path())
	app.setStatus("config reloaded")
}
