// Package split implements the action that splits a quoted string literal
// at the cursor into two literals joined by a concatenation token.
package split

import (
	"fmt"

	"github.com/dshills/splitstring/internal/config"
	"github.com/dshills/splitstring/internal/dispatcher"
	"github.com/dshills/splitstring/internal/dispatcher/execctx"
	"github.com/dshills/splitstring/internal/dispatcher/handler"
	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/input"
	"github.com/dshills/splitstring/internal/splitter"
)

// ActionName is the action this package handles.
const ActionName = input.ActionSplitString

// DataDecision is the result data key holding the splitter.Decision.
const DataDecision = "decision"

// Handler splits the string under the single cursor, or aborts.
type Handler struct{}

// New returns a split handler.
func New() *Handler {
	return &Handler{}
}

// Evaluate gathers the cursor context from ed and decides whether the string
// there can be split. The configuration is resolved from settings for the
// scopes at the cursor; nil settings mean the defaults.
func Evaluate(ed host.Editor, settings host.Settings) splitter.Decision {
	if ed == nil {
		return splitter.Ineligible(splitter.ReasonNoEditor)
	}
	if ed.CursorCount() > 1 {
		return splitter.Ineligible(splitter.ReasonMultipleCursors)
	}

	pos := ed.CursorPosition()
	line := ed.LineText(pos.Row)
	at := ed.ScopesAt(pos)
	before := ed.ScopesAt(pos.Before())

	return splitter.Decide(pos, line, at, before, config.Resolve(settings, at))
}

// Handle implements handler.Handler.
func (h *Handler) Handle(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	ed := ctx.Editor()
	d := Evaluate(ed, ctx.Settings)
	if !d.Eligible {
		return handler.Aborted(d.Reason.String()).WithData(DataDecision, d)
	}

	pos := ed.CursorPosition()
	text := d.Replacement()
	if err := ed.InsertText(text); err != nil {
		return handler.Error(fmt.Errorf("split string at %s: %w", pos, err))
	}

	ctx.Logger.WithFields(map[string]any{
		"at":        pos,
		"kind":      d.Kind,
		"connector": d.Connector,
	}).Debug("split string")

	return handler.Success().
		WithEdit(handler.Edit{Position: pos, NewText: text}).
		WithData(DataDecision, d)
}

// CanHandle implements handler.Handler.
func (h *Handler) CanHandle(actionName string) bool {
	return actionName == ActionName
}

// Priority implements handler.Handler.
func (h *Handler) Priority() int {
	return 0
}

// Register adds the split handler to d with a plain newline as fallback.
func Register(d *dispatcher.Dispatcher) {
	d.RegisterHandler(ActionName, New())
	d.SetFallback(ActionName, input.ActionInsertNewline)
}
