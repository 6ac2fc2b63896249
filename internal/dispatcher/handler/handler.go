// Package handler provides the handler interface and result types for
// action dispatch.
package handler

import (
	"github.com/dshills/splitstring/internal/dispatcher/execctx"
	"github.com/dshills/splitstring/internal/input"
)

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Priority returns the handler priority (higher = checked first).
	Priority() int
}

// Func adapts a function to Handler for a single action name.
type Func struct {
	// ActionName is the action this handler processes.
	ActionName string

	// Fn is the handler function.
	Fn func(action input.Action, ctx *execctx.ExecutionContext) Result

	// Prio is the handler priority.
	Prio int
}

// Handle implements Handler.
func (h *Func) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if h.Fn == nil {
		return Errorf("handler function is nil")
	}
	return h.Fn(action, ctx)
}

// CanHandle implements Handler.
func (h *Func) CanHandle(actionName string) bool {
	return actionName == h.ActionName
}

// Priority implements Handler.
func (h *Func) Priority() int {
	return h.Prio
}

// Namespace handles a group of related actions, such as every "cursor.*"
// action.
type Namespace struct {
	name    string
	actions map[string]func(action input.Action, ctx *execctx.ExecutionContext) Result
}

// NewNamespace creates an empty namespace handler.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:    name,
		actions: make(map[string]func(input.Action, *execctx.ExecutionContext) Result),
	}
}

// Register registers a function for an action name.
func (n *Namespace) Register(actionName string, fn func(action input.Action, ctx *execctx.ExecutionContext) Result) {
	n.actions[actionName] = fn
}

// Name returns the namespace name.
func (n *Namespace) Name() string {
	return n.name
}

// Actions returns the registered action names.
func (n *Namespace) Actions() []string {
	names := make([]string, 0, len(n.actions))
	for name := range n.actions {
		names = append(names, name)
	}
	return names
}

// Handle implements Handler.
func (n *Namespace) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	fn, ok := n.actions[action.Name]
	if !ok {
		return Errorf("unknown action in namespace %s: %s", n.name, action.Name)
	}
	return fn(action, ctx)
}

// CanHandle implements Handler.
func (n *Namespace) CanHandle(actionName string) bool {
	_, ok := n.actions[actionName]
	return ok
}

// Priority implements Handler.
func (n *Namespace) Priority() int {
	return 0
}
