package grammar

import (
	"sync"

	"github.com/dshills/splitstring/internal/scope"
)

// LineSource supplies the text of a buffer.
type LineSource interface {
	LineCount() int
	LineText(row int) string
}

// Provider answers scope queries for a buffer, caching the scanner state at
// the start of every line so a query only rescans the requested row.
type Provider struct {
	mu sync.Mutex

	grammar *Grammar
	source  LineSource

	// states[i] is the state at the start of row i; valid for i < len(states).
	states []State
}

// NewProvider creates a provider for the given grammar and buffer.
func NewProvider(g *Grammar, source LineSource) *Provider {
	return &Provider{grammar: g, source: source}
}

// Grammar returns the grammar in use.
func (p *Provider) Grammar() *Grammar {
	return p.grammar
}

// SetGrammar switches grammars and drops all cached state.
func (p *Provider) SetGrammar(g *Grammar) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grammar = g
	p.states = nil
}

// ScopesAt returns the scope stack of the rune at pos.
func (p *Provider) ScopesAt(pos scope.Position) scope.Stack {
	line, ok := p.Line(pos.Row)
	if !ok {
		return scope.Stack(p.grammar.rootScopes).Clone()
	}
	return line.At(pos.Column).Clone()
}

// Line tokenizes one row. It returns false for rows outside the buffer.
func (p *Provider) Line(row int) (Line, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if row < 0 || row >= p.source.LineCount() {
		return Line{}, false
	}
	start := p.stateAt(row)
	line, _ := p.grammar.TokenizeLine(p.source.LineText(row), start)
	return line, true
}

// Invalidate drops cached state from row onwards. Call it after editing row.
func (p *Provider) Invalidate(row int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if row < 0 {
		row = 0
	}
	// The state at the start of row is unaffected by edits to row itself.
	if keep := row + 1; keep < len(p.states) {
		p.states = p.states[:keep]
	}
}

// stateAt computes the state at the start of row. Caller holds mu.
func (p *Provider) stateAt(row int) State {
	if len(p.states) == 0 {
		p.states = append(p.states, State{})
	}
	for len(p.states) <= row {
		r := len(p.states) - 1
		_, next := p.grammar.TokenizeLine(p.source.LineText(r), p.states[r])
		p.states = append(p.states, next.clone())
	}
	return p.states[row].clone()
}
