package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/splitstring/internal/dispatcher/execctx"
	"github.com/dshills/splitstring/internal/input"
	"github.com/dshills/splitstring/internal/scope"
)

func TestResultStatusString(t *testing.T) {
	tests := []struct {
		status ResultStatus
		want   string
	}{
		{StatusOK, "ok"},
		{StatusNoOp, "no-op"},
		{StatusError, "error"},
		{StatusAborted, "aborted"},
		{ResultStatus(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestResultConstructors(t *testing.T) {
	assert.True(t, Success().IsOK())
	assert.Equal(t, StatusNoOp, NoOp().Status)

	err := errors.New("boom")
	r := Error(err)
	assert.True(t, r.IsError())
	assert.Same(t, err, r.Error)

	r = Errorf("bad %d", 3)
	assert.EqualError(t, r.Error, "bad 3")

	r = Aborted("not inside a quoted string")
	assert.True(t, r.IsAborted())
	assert.Equal(t, "not inside a quoted string", r.Message)
}

func TestResultWithIsCopy(t *testing.T) {
	base := Success().WithData("a", 1)
	derived := base.WithData("b", "two").WithEdit(Edit{Position: scope.Position{Row: 1}, NewText: "x"})

	_, ok := base.GetData("b")
	assert.False(t, ok, "WithData must not alias the original map")
	assert.Empty(t, base.Edits)

	v, ok := derived.GetData("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, "two", derived.GetDataString("b"))
	assert.Equal(t, "", derived.GetDataString("a"))
	assert.Len(t, derived.Edits, 1)

	assert.Equal(t, "msg", base.WithMessage("msg").Message)
	assert.Equal(t, "", base.Message)
}

func TestFunc(t *testing.T) {
	h := &Func{ActionName: "a.b", Prio: 3, Fn: func(input.Action, *execctx.ExecutionContext) Result {
		return NoOp()
	}}
	assert.True(t, h.CanHandle("a.b"))
	assert.False(t, h.CanHandle("a.c"))
	assert.Equal(t, 3, h.Priority())
	assert.Equal(t, StatusNoOp, h.Handle(input.Action{}, nil).Status)

	assert.True(t, (&Func{}).Handle(input.Action{}, nil).IsError())
}

func TestNamespace(t *testing.T) {
	ns := NewNamespace("cursor")
	ns.Register("cursor.moveUp", func(input.Action, *execctx.ExecutionContext) Result { return Success() })

	assert.Equal(t, "cursor", ns.Name())
	assert.Equal(t, []string{"cursor.moveUp"}, ns.Actions())
	assert.True(t, ns.CanHandle("cursor.moveUp"))
	assert.False(t, ns.CanHandle("cursor.moveDown"))
	assert.True(t, ns.Handle(input.Named("cursor.moveUp"), nil).IsOK())
	assert.True(t, ns.Handle(input.Named("cursor.moveDown"), nil).IsError())
}
