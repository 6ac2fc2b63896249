package grammar

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Registry manages available grammars.
type Registry struct {
	mu sync.RWMutex

	// byName maps language names and scope names to grammars
	byName map[string]*Grammar

	// ordered keeps registration order for path matching
	ordered []*Grammar
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Grammar)}
}

// DefaultRegistry returns a registry with the built-in grammars.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, g := range Builtin() {
		r.Register(g)
	}
	return r
}

// Register adds a grammar. A later grammar with the same name replaces
// the earlier one.
func (r *Registry) Register(g *Grammar) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byName[g.name]; ok {
		for i, o := range r.ordered {
			if o == old {
				r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
				break
			}
		}
	}
	r.byName[g.name] = g
	r.byName[g.scopeName] = g
	r.ordered = append(r.ordered, g)
}

// Get returns the grammar with the given language or scope name.
func (r *Registry) Get(name string) (*Grammar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGrammar, name)
	}
	return g, nil
}

// ForPath returns the first grammar whose file patterns match path.
// Later registrations take precedence.
func (r *Registry) ForPath(path string) (*Grammar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "/")
	for i := len(r.ordered) - 1; i >= 0; i-- {
		g := r.ordered[i]
		for _, pattern := range g.filePatterns {
			if ok, _ := doublestar.Match(pattern, p); ok {
				return g, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no grammar for %s", ErrUnknownGrammar, path)
}

// Names returns the registered language names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ordered))
	for _, g := range r.ordered {
		names = append(names, g.name)
	}
	sort.Strings(names)
	return names
}
