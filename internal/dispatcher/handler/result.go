package handler

import (
	"fmt"

	"github.com/dshills/splitstring/internal/scope"
)

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
	// StatusAborted indicates the handler declined the action so the key's
	// default behaviour should run instead.
	StatusAborted
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Edit records text inserted by an action.
type Edit struct {
	// Position is where the text was inserted.
	Position scope.Position
	// NewText is the inserted text.
	NewText string
}

// Result represents the outcome of handling an action.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred.
	Error error

	// Message is an optional status message for display.
	Message string

	// Edits contains text edits that were applied.
	Edits []Edit

	// Data holds handler-specific return data.
	Data map[string]any
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// IsAborted returns true if the handler declined the action.
func (r Result) IsAborted() bool {
	return r.Status == StatusAborted
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// Aborted creates an aborted result. The reason becomes the message.
func Aborted(reason string) Result {
	return Result{Status: StatusAborted, Message: reason}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithEdit returns a copy of the result with an edit added.
func (r Result) WithEdit(edit Edit) Result {
	r.Edits = append(append([]Edit(nil), r.Edits...), edit)
	return r
}

// WithData returns a copy of the result with data added.
func (r Result) WithData(key string, value any) Result {
	data := make(map[string]any, len(r.Data)+1)
	for k, v := range r.Data {
		data[k] = v
	}
	data[key] = value
	r.Data = data
	return r
}

// GetData retrieves a value from the result data.
func (r Result) GetData(key string) (any, bool) {
	v, ok := r.Data[key]
	return v, ok
}

// GetDataString retrieves a string value from the result data.
func (r Result) GetDataString(key string) string {
	if s, ok := r.Data[key].(string); ok {
		return s
	}
	return ""
}
