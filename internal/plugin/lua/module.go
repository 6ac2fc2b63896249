package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/splitstring/internal/config"
	"github.com/dshills/splitstring/internal/grammar"
	"github.com/dshills/splitstring/internal/host"
	"github.com/dshills/splitstring/internal/scope"
	"github.com/dshills/splitstring/internal/splitter"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "splitstring"

// Module exposes the decider to Lua.
type Module struct {
	settings config.Getter
	grammars *grammar.Registry
}

// NewModule creates the module. Settings supply the configuration defaults
// and may be nil; a nil registry means the built-in grammars.
func NewModule(settings config.Getter, grammars *grammar.Registry) *Module {
	if grammars == nil {
		grammars = grammar.DefaultRegistry()
	}
	return &Module{settings: settings, grammars: grammars}
}

// Open preloads the module into s.
func (m *Module) Open(s *State) error {
	return s.Preload(ModuleName, m.loader)
}

func (m *Module) loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"classify":           m.classify,
		"should_ignore":      m.shouldIgnore,
		"connector":          m.connector,
		"replacement":        m.replacement,
		"leading_whitespace": m.leadingWhitespace,
		"decide":             m.decide,
		"scopes_at":          m.scopesAt,
	})
	mod.RawSetString("default_connector", lua.LString(splitter.DefaultConnector))
	L.Push(mod)
	return 1
}

// classify(scopes) -> "single" | "double" | "none"
func (m *Module) classify(L *lua.LState) int {
	L.Push(lua.LString(splitter.Classify(checkStack(L, 1)).String()))
	return 1
}

// should_ignore(scopes [, config]) -> boolean
func (m *Module) shouldIgnore(L *lua.LState) int {
	scopes := checkStack(L, 1)
	cfg := optConfig(L, 2, m.settings, scopes)
	L.Push(lua.LBool(splitter.ShouldIgnoreScope(scopes, cfg)))
	return 1
}

// connector(scopes [, config]) -> string
func (m *Module) connector(L *lua.LState) int {
	scopes := checkStack(L, 1)
	cfg := optConfig(L, 2, m.settings, scopes)
	L.Push(lua.LString(splitter.ResolveConnector(scopes, cfg)))
	return 1
}

// replacement(quote, connector, leading) -> string
func (m *Module) replacement(L *lua.LState) int {
	quote := checkQuote(L, 1)
	connector := L.CheckString(2)
	leading := L.OptString(3, "")
	L.Push(lua.LString(splitter.BuildReplacement(quote, connector, leading)))
	return 1
}

// leading_whitespace(line) -> string
func (m *Module) leadingWhitespace(L *lua.LState) int {
	L.Push(lua.LString(splitter.LeadingWhitespace(L.CheckString(1))))
	return 1
}

// decide(column, line, scopes_at, scopes_before [, config]) -> table
func (m *Module) decide(L *lua.LState) int {
	col := L.CheckInt(1)
	line := L.CheckString(2)
	at := checkStack(L, 3)
	before := checkStack(L, 4)
	cfg := optConfig(L, 5, m.settings, at)

	d := splitter.Decide(scope.Position{Column: col}, line, at, before, cfg)
	L.Push(decisionToTable(L, d))
	return 1
}

// scopes_at(grammar, text, row, column) -> array of scope names
func (m *Module) scopesAt(L *lua.LState) int {
	g, err := m.grammars.Get(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	doc := host.NewDocument("", L.CheckString(2), g)
	pos := scope.Position{Row: L.CheckInt(3), Column: L.CheckInt(4)}
	L.Push(stackToTable(L, doc.ScopesAt(pos)))
	return 1
}
