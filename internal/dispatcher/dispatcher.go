// Package dispatcher routes actions to handlers and coordinates execution.
//
// Each dispatch gets a fresh execution context tagged with a new invocation
// id. When a handler aborts and the action has a fallback, the fallback is
// dispatched in the same invocation; this is how a key keeps its default
// behaviour when a smarter action declines.
package dispatcher

import (
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/splitstring/internal/dispatcher/execctx"
	"github.com/dshills/splitstring/internal/dispatcher/handler"
	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/input"
	"github.com/dshills/splitstring/internal/logging"
)

// Result data keys set when a fallback ran.
const (
	DataAbortedAction = "abortedAction"
	DataAbortReason   = "abortReason"
)

// Config configures a Dispatcher.
type Config struct {
	// RecoverFromPanic turns handler panics into error results.
	RecoverFromPanic bool
}

// DefaultConfig returns the default dispatcher configuration.
func DefaultConfig() Config {
	return Config{RecoverFromPanic: true}
}

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	registry  *Registry
	fallbacks map[string]string

	workspace host.Workspace
	settings  host.Settings
	logger    *logging.Logger

	config Config
	newID  func() string
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	return &Dispatcher{
		registry:  NewRegistry(),
		fallbacks: make(map[string]string),
		logger:    logging.Nop(),
		config:    config,
		newID:     uuid.NewString,
	}
}

// NewWithDefaults creates a new dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetWorkspace sets the workspace handlers read the active editor from.
func (d *Dispatcher) SetWorkspace(ws host.Workspace) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.workspace = ws
}

// SetSettings sets the settings handlers read configuration from.
func (d *Dispatcher) SetSettings(s host.Settings) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settings = s
}

// SetLogger sets the logger.
func (d *Dispatcher) SetLogger(l *logging.Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l == nil {
		l = logging.Nop()
	}
	d.logger = l.WithComponent("dispatcher")
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterFunc(actionName string, fn func(input.Action, *execctx.ExecutionContext) handler.Result) {
	d.registry.Register(actionName, &handler.Func{ActionName: actionName, Fn: fn})
}

// RegisterNamespace registers a namespace handler for each of its actions.
func (d *Dispatcher) RegisterNamespace(ns *handler.Namespace) {
	for _, name := range ns.Actions() {
		d.registry.Register(name, ns)
	}
}

// SetFallback makes fallback run whenever actionName aborts.
func (d *Dispatcher) SetFallback(actionName, fallback string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fallback == "" {
		delete(d.fallbacks, actionName)
		return
	}
	d.fallbacks[actionName] = fallback
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch executes an action synchronously, running the registered
// fallback if the handler aborts.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	d.mu.RLock()
	fallback := d.fallbacks[action.Name]
	d.mu.RUnlock()
	return d.DispatchWithFallback(action, fallback)
}

// DispatchWithFallback executes an action and, if it aborts, the given
// fallback action with the same arguments. An empty fallback disables it.
func (d *Dispatcher) DispatchWithFallback(action input.Action, fallback string) handler.Result {
	ctx := d.buildContext()

	result := d.run(action, ctx)
	if !result.IsAborted() || fallback == "" || fallback == action.Name {
		return result
	}

	ctx.Logger.Debug("falling back from %s to %s", action.Name, fallback)
	fb := action
	fb.Name = fallback
	return d.run(fb, ctx).
		WithData(DataAbortedAction, action.Name).
		WithData(DataAbortReason, result.Message)
}

func (d *Dispatcher) run(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	log := ctx.Logger.WithFields(map[string]any{
		"action": action.Name,
		"source": action.Source,
	})

	h := d.registry.Get(action.Name)
	if h == nil {
		log.Warn("no handler")
		return handler.Errorf("no handler for action: %s", action.Name)
	}

	var result handler.Result
	if d.config.RecoverFromPanic {
		result = d.executeWithRecovery(h, action, ctx)
	} else {
		result = h.Handle(action, ctx)
	}

	switch {
	case result.IsError():
		log.Error("handler failed: %v", result.Error)
	case result.Message != "":
		log.Debug("%s: %s", result.Status, result.Message)
	default:
		log.Debug("%s", result.Status)
	}
	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			result = handler.Errorf("handler panic for %s: %v\n%s", action.Name, r, string(stack[:n]))
		}
	}()

	return h.Handle(action, ctx)
}

// buildContext builds an execution context from current state.
func (d *Dispatcher) buildContext() *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	id := d.newID()
	return execctx.New(id, d.workspace, d.settings, d.logger.WithField("invocation", id))
}
