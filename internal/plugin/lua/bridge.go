package lua

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/splitstring/internal/config"
	"github.com/dshills/splitstring/internal/scope"
	"github.com/dshills/splitstring/internal/splitter"
)

// checkStack reads argument n as an array of scope names.
func checkStack(L *lua.LState, n int) scope.Stack {
	t := L.CheckTable(n)
	size := t.Len()
	stack := make(scope.Stack, 0, size)
	for i := 1; i <= size; i++ {
		s, ok := t.RawGetInt(i).(lua.LString)
		if !ok {
			L.ArgError(n, "scope stack must be an array of strings")
			return nil
		}
		stack = append(stack, string(s))
	}
	return stack
}

// stackToTable converts a scope stack to a Lua array.
func stackToTable(L *lua.LState, stack scope.Stack) *lua.LTable {
	t := L.CreateTable(len(stack), 0)
	for _, s := range stack {
		t.Append(lua.LString(s))
	}
	return t
}

// stringList reads an array of strings.
func stringList(L *lua.LState, n int, v lua.LValue) []string {
	t, ok := v.(*lua.LTable)
	if !ok {
		L.ArgError(n, "scopes_to_ignore must be an array of strings")
		return nil
	}
	out := make([]string, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		s, ok := t.RawGetInt(i).(lua.LString)
		if !ok {
			L.ArgError(n, "scopes_to_ignore must be an array of strings")
			return nil
		}
		out = append(out, string(s))
	}
	return out
}

// optConfig resolves the decider configuration for scopes from settings,
// then applies the optional config table at argument n.
func optConfig(L *lua.LState, n int, settings config.Getter, scopes scope.Stack) splitter.Config {
	cfg := config.Resolve(settings, scopes)

	t, ok := L.Get(n).(*lua.LTable)
	if !ok {
		if L.Get(n) != lua.LNil {
			L.ArgError(n, "config must be a table")
		}
		return cfg
	}

	if v := t.RawGetString("preset"); v != lua.LNil {
		preset, err := splitter.PresetConfig(lua.LVAsString(v))
		if err != nil {
			L.ArgError(n, err.Error())
			return cfg
		}
		cfg = preset
	}
	if v := t.RawGetString("connector"); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			L.ArgError(n, "connector must be a string")
			return cfg
		}
		cfg.Connector = string(s)
	}
	if v := t.RawGetString("scopes_to_ignore"); v != lua.LNil {
		cfg.ScopesToIgnore = stringList(L, n, v)
	}
	if v := t.RawGetString("jsx_heuristics"); v != lua.LNil {
		cfg.Rules = nil
		if lua.LVAsBool(v) {
			cfg.Rules = append([]splitter.IndexRule(nil), splitter.JSXRules...)
		}
	}
	return cfg
}

// checkQuote reads argument n as a single-character string.
func checkQuote(L *lua.LState, n int) rune {
	s := L.CheckString(n)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		L.ArgError(n, "quote must be a single character")
		return 0
	}
	return r
}

// decisionToTable converts a decision. The replacement field is only set
// when the decision is eligible.
func decisionToTable(L *lua.LState, d splitter.Decision) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("eligible", lua.LBool(d.Eligible))
	t.RawSetString("reason", lua.LString(d.Reason.String()))
	t.RawSetString("kind", lua.LString(d.Kind.String()))
	if d.Eligible {
		t.RawSetString("quote", lua.LString(string(d.Quote)))
		t.RawSetString("connector", lua.LString(d.Connector))
		t.RawSetString("leading_whitespace", lua.LString(d.LeadingWhitespace))
		t.RawSetString("replacement", lua.LString(d.Replacement()))
	}
	return t
}
