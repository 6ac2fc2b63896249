// Package lua embeds a sandboxed Lua runtime that exposes the string
// splitting decider to scripts.
//
// # State
//
// A State wraps gopher-lua with only the base, table, string and math
// libraries opened. The io, os, debug and package libraries are never
// loaded and the functions that load code from disk or strings are removed:
//
//	state := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	defer state.Close()
//
//	if err := lua.NewModule(store, nil).Open(state); err != nil {
//	    return err
//	}
//	if err := state.DoFile(ctx, "split.lua"); err != nil {
//	    return err
//	}
//
// # Module
//
// Scripts load the decider with require:
//
//	local ss = require("splitstring")
//	local d = ss.decide(4, "x = 'abc'", {"source.js", "string.quoted.single.js"},
//	    {"source.js", "string.quoted.single.js"})
//	if d.eligible then print(d.replacement) end
//
// Scope stacks are arrays of strings, outermost first. Columns are zero
// based and counted in characters. Functions that take a trailing config
// table accept connector, scopes_to_ignore, preset and jsx_heuristics keys;
// anything missing comes from the settings the module was created with.
package lua
