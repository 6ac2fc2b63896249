// Package cursor provides handlers for cursor movement.
package cursor

import (
	"errors"

	"github.com/dshills/splitstring/internal/dispatcher/execctx"
	"github.com/dshills/splitstring/internal/dispatcher/handler"
	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/input"
	"github.com/dshills/splitstring/internal/scope"
)

// ErrUnsupported is returned when the active editor cannot move its cursor.
var ErrUnsupported = errors.New("editor does not support cursor movement")

// New returns the "cursor" namespace handler.
func New() *handler.Namespace {
	ns := handler.NewNamespace("cursor")
	ns.Register(input.ActionCursorUp, move(-1, 0))
	ns.Register(input.ActionCursorDown, move(1, 0))
	ns.Register(input.ActionCursorLeft, move(0, -1))
	ns.Register(input.ActionCursorRight, move(0, 1))
	ns.Register(input.ActionLineStart, lineStart)
	ns.Register(input.ActionLineEnd, lineEnd)
	return ns
}

func navigator(ctx *execctx.ExecutionContext) (host.Editor, host.Navigator, error) {
	ed, err := ctx.RequireEditor()
	if err != nil {
		return nil, nil, err
	}
	nav, ok := ed.(host.Navigator)
	if !ok {
		return nil, nil, ErrUnsupported
	}
	return ed, nav, nil
}

func move(dRow, dCol int) func(input.Action, *execctx.ExecutionContext) handler.Result {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		_, nav, err := navigator(ctx)
		if err != nil {
			return handler.Error(err)
		}
		nav.MoveCursor(dRow, dCol)
		return handler.Success()
	}
}

func lineStart(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	ed, nav, err := navigator(ctx)
	if err != nil {
		return handler.Error(err)
	}
	pos := ed.CursorPosition()
	if err := nav.SetCursor(scope.Position{Row: pos.Row}); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}

func lineEnd(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	ed, nav, err := navigator(ctx)
	if err != nil {
		return handler.Error(err)
	}
	pos := ed.CursorPosition()
	end := len([]rune(ed.LineText(pos.Row)))
	if err := nav.SetCursor(scope.Position{Row: pos.Row, Column: end}); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}
