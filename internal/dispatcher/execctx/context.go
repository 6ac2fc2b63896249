// Package execctx provides the execution context for action handlers.
package execctx

import (
	"errors"

	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/logging"
)

// ErrNoEditor is returned when an action needs an editor and none is active.
var ErrNoEditor = errors.New("no active editor")

// ExecutionContext carries what a handler may touch during one invocation.
// A new context is built for every dispatch.
type ExecutionContext struct {
	// InvocationID identifies this dispatch in logs.
	InvocationID string

	// Workspace supplies the active editor.
	Workspace host.Workspace

	// Settings supplies scoped configuration.
	Settings host.Settings

	// Logger is tagged with the invocation id.
	Logger *logging.Logger

	// Data holds values passed between hooks and handlers.
	Data map[string]any
}

// New creates a context.
func New(id string, ws host.Workspace, settings host.Settings, logger *logging.Logger) *ExecutionContext {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ExecutionContext{
		InvocationID: id,
		Workspace:    ws,
		Settings:     settings,
		Logger:       logger,
	}
}

// Editor returns the active editor, or nil.
func (ctx *ExecutionContext) Editor() host.Editor {
	if ctx.Workspace == nil {
		return nil
	}
	return ctx.Workspace.ActiveEditor()
}

// RequireEditor returns the active editor or ErrNoEditor.
func (ctx *ExecutionContext) RequireEditor() (host.Editor, error) {
	ed := ctx.Editor()
	if ed == nil {
		return nil, ErrNoEditor
	}
	return ed, nil
}

// SetData sets a context data value.
func (ctx *ExecutionContext) SetData(key string, value any) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]any)
	}
	ctx.Data[key] = value
}

// GetData retrieves a context data value.
func (ctx *ExecutionContext) GetData(key string) (any, bool) {
	v, ok := ctx.Data[key]
	return v, ok
}
