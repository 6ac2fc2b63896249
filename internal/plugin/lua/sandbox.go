package lua

import (
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to the opened safe libraries and to
// modules preloaded from Go.
type Sandbox struct {
	L *lua.LState

	output  io.Writer
	modules map[string]lua.LGFunction
	loaded  *lua.LTable
}

// removedGlobals load code, reach the module system or inspect internals.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"module",
	"require",
	"getfenv",
	"setfenv",
	"collectgarbage",
	"newproxy",
	"_printregs",
}

// builtinModules can be required by name and resolve to their globals.
var builtinModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// NewSandbox creates a sandbox for L that prints to output.
func NewSandbox(L *lua.LState, output io.Writer) *Sandbox {
	return &Sandbox{
		L:       L,
		output:  output,
		modules: make(map[string]lua.LGFunction),
		loaded:  L.NewTable(),
	}
}

// Install removes unsafe globals and installs print and require.
func (s *Sandbox) Install() {
	for _, name := range removedGlobals {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(s.print))
	s.L.SetGlobal("require", s.L.NewFunction(s.require))
}

// Preload registers a module loader. A module loaded before is replaced on
// the next require.
func (s *Sandbox) Preload(name string, loader lua.LGFunction) {
	s.modules[name] = loader
	s.loaded.RawSetString(name, lua.LNil)
}

// Modules returns the names of the preloaded modules.
func (s *Sandbox) Modules() []string {
	names := make([]string, 0, len(s.modules))
	for name := range s.modules {
		names = append(names, name)
	}
	return names
}

func (s *Sandbox) print(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = lua.LVAsString(L.ToStringMeta(L.Get(i)))
	}
	_, _ = io.WriteString(s.output, strings.Join(parts, "\t")+"\n")
	return 0
}

func (s *Sandbox) require(L *lua.LState) int {
	name := L.CheckString(1)

	if mod := s.loaded.RawGetString(name); mod != lua.LNil {
		L.Push(mod)
		return 1
	}
	if builtinModules[name] {
		L.Push(L.GetGlobal(name))
		return 1
	}

	loader, ok := s.modules[name]
	if !ok {
		L.RaiseError("%s: %q", ErrModuleNotFound, name)
		return 0
	}

	L.Push(L.NewFunction(loader))
	L.Push(lua.LString(name))
	L.Call(1, 1)

	mod := L.Get(-1)
	if mod == lua.LNil {
		L.Pop(1)
		mod = lua.LTrue
		L.Push(mod)
	}
	s.loaded.RawSetString(name, mod)
	return 1
}
