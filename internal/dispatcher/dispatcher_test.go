package dispatcher_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/splitstring/internal/dispatcher"
	"github.com/dshills/splitstring/internal/dispatcher/execctx"
	"github.com/dshills/splitstring/internal/dispatcher/handler"
	"github.com/dshills/splitstring/internal/input"
	"github.com/dshills/splitstring/internal/logging"
)

func TestDispatchNoHandler(t *testing.T) {
	d := dispatcher.NewWithDefaults()

	result := d.Dispatch(input.Action{Name: "unknown.action"})
	assert.True(t, result.IsError())
}

func TestDispatchPriority(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	d.RegisterHandler("a", &handler.Func{ActionName: "a", Prio: 1, Fn: func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithMessage("low")
	}})
	d.RegisterHandler("a", &handler.Func{ActionName: "a", Prio: 5, Fn: func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.Success().WithMessage("high")
	}})

	assert.Equal(t, "high", d.Dispatch(input.Named("a")).Message)
	assert.Equal(t, []string{"a"}, d.Registry().List())
	assert.True(t, d.Registry().Has("a"))

	d.Registry().Unregister("a")
	assert.False(t, d.Registry().Has("a"))
}

func TestDispatchFreshContextPerInvocation(t *testing.T) {
	d := dispatcher.NewWithDefaults()

	var ids []string
	d.RegisterFunc("a", func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		ids = append(ids, ctx.InvocationID)
		_, seen := ctx.GetData("mark")
		ctx.SetData("mark", true)
		return handler.Success().WithData("seen", seen)
	})

	r1 := d.Dispatch(input.Named("a"))
	r2 := d.Dispatch(input.Named("a"))

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	assert.Len(t, ids[0], 36)
	assert.Equal(t, false, r1.Data["seen"])
	assert.Equal(t, false, r2.Data["seen"])
}

func TestDispatchFallbackOnAbort(t *testing.T) {
	d := dispatcher.NewWithDefaults()

	var calls []string
	var ids []string
	d.RegisterFunc("smart", func(a input.Action, ctx *execctx.ExecutionContext) handler.Result {
		calls = append(calls, a.Name)
		ids = append(ids, ctx.InvocationID)
		return handler.Aborted("not here")
	})
	d.RegisterFunc("plain", func(a input.Action, ctx *execctx.ExecutionContext) handler.Result {
		calls = append(calls, a.Name+":"+a.Args.Text)
		ids = append(ids, ctx.InvocationID)
		return handler.Success()
	})
	d.SetFallback("smart", "plain")

	r := d.Dispatch(input.Action{Name: "smart", Args: input.ActionArgs{Text: "t"}})
	assert.True(t, r.IsOK())
	assert.Equal(t, []string{"smart", "plain:t"}, calls)
	assert.Equal(t, ids[0], ids[1], "fallback runs in the same invocation")
	assert.Equal(t, "smart", r.GetDataString(dispatcher.DataAbortedAction))
	assert.Equal(t, "not here", r.GetDataString(dispatcher.DataAbortReason))

	calls = nil
	r = d.DispatchWithFallback(input.Named("smart"), "")
	assert.True(t, r.IsAborted())
	assert.Equal(t, []string{"smart"}, calls)

	d.SetFallback("smart", "")
	calls = nil
	assert.True(t, d.Dispatch(input.Named("smart")).IsAborted())
	assert.Equal(t, []string{"smart"}, calls)
}

func TestDispatchFallbackToSelfIgnored(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	n := 0
	d.RegisterFunc("x", func(input.Action, *execctx.ExecutionContext) handler.Result {
		n++
		return handler.Aborted("no")
	})

	assert.True(t, d.DispatchWithFallback(input.Named("x"), "x").IsAborted())
	assert.Equal(t, 1, n)
}

func TestDispatchRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	d := dispatcher.NewWithDefaults()
	d.SetLogger(logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf}))
	d.RegisterFunc("boom", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("kaboom")
	})

	r := d.Dispatch(input.Named("boom"))
	require.True(t, r.IsError())
	assert.Contains(t, r.Error.Error(), "kaboom")
	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), "action=boom")
	assert.Contains(t, buf.String(), "component=dispatcher")
	assert.Contains(t, buf.String(), "invocation=")
}

func TestDispatchWithoutRecovery(t *testing.T) {
	d := dispatcher.New(dispatcher.Config{})
	d.RegisterFunc("boom", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("kaboom")
	})

	assert.Panics(t, func() { d.Dispatch(input.Named("boom")) })
}

func TestRegisterNamespace(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	ns := handler.NewNamespace("n")
	ns.Register("n.a", func(input.Action, *execctx.ExecutionContext) handler.Result { return handler.Success() })
	ns.Register("n.b", func(input.Action, *execctx.ExecutionContext) handler.Result { return handler.NoOp() })
	d.RegisterNamespace(ns)

	assert.True(t, d.Dispatch(input.Named("n.a")).IsOK())
	assert.Equal(t, handler.StatusNoOp, d.Dispatch(input.Named("n.b")).Status)
	assert.Equal(t, []string{"n.a", "n.b"}, d.Registry().List())
}
