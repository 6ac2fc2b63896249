// Package editor provides handlers for plain text editing actions.
package editor

import (
	"errors"

	"github.com/dshills/splitstring/internal/dispatcher/execctx"
	"github.com/dshills/splitstring/internal/dispatcher/handler"
	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/input"
)

// ErrUnsupported is returned when the active editor lacks a capability.
var ErrUnsupported = errors.New("editor does not support this action")

// New returns the "editor" namespace handler.
func New() *handler.Namespace {
	ns := handler.NewNamespace("editor")
	ns.Register(input.ActionInsertNewline, insertNewline)
	ns.Register(input.ActionInsertText, insertText)
	ns.Register(input.ActionDeleteBackward, deleteBackward)
	return ns
}

func insertNewline(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	return insert(ctx, "\n")
}

func insertText(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Args.Text == "" {
		return handler.NoOp()
	}
	return insert(ctx, action.Args.Text)
}

func insert(ctx *execctx.ExecutionContext, text string) handler.Result {
	ed, err := ctx.RequireEditor()
	if err != nil {
		return handler.Error(err)
	}
	pos := ed.CursorPosition()
	if err := ed.InsertText(text); err != nil {
		return handler.Error(err)
	}
	return handler.Success().WithEdit(handler.Edit{Position: pos, NewText: text})
}

func deleteBackward(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
	ed, err := ctx.RequireEditor()
	if err != nil {
		return handler.Error(err)
	}
	del, ok := ed.(host.Deleter)
	if !ok {
		return handler.Error(ErrUnsupported)
	}
	if err := del.DeleteBackward(); err != nil {
		return handler.Error(err)
	}
	return handler.Success()
}
