package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/splitstring/internal/scope"
	"github.com/dshills/splitstring/internal/splitter"
)

// Section is the document section holding the splitstring settings.
const Section = "splitString"

// Fully qualified setting keys.
const (
	KeyConnector      = Section + ".connector"
	KeyScopesToIgnore = Section + ".scopesToIgnore"
	KeyPreset         = Section + ".preset"
	KeyJSXHeuristics  = Section + ".jsxHeuristics"
)

// KeyLogLevel is the logging level setting outside the splitString section.
const KeyLogLevel = "logging.level"

const (
	nameConnector      = "connector"
	nameScopesToIgnore = "scopesToIgnore"
	namePreset         = "preset"
	nameJSXHeuristics  = "jsxHeuristics"
	nameScoped         = "scoped"
	nameSelector       = "selector"
)

// Override is a set of values that applies under a scope selector.
type Override struct {
	Selector scope.Selector
	Values   map[string]any
}

// Store holds the current settings. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	values    map[string]any
	overrides []Override
	logLevel  string
	sources   Sources
}

// NewStore returns a store holding only the defaults.
func NewStore() *Store {
	return &Store{values: map[string]any{}}
}

// Load replaces the settings with those of doc. On error the store is left
// unchanged.
func (s *Store) Load(doc map[string]any) error {
	values, overrides, err := parseSection(doc)
	if err != nil {
		return err
	}

	level, err := parseLogLevel(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = values
	s.overrides = overrides
	s.logLevel = level
	s.mu.Unlock()
	return nil
}

// Get returns the value of key for a cursor whose scope stack is scopes.
// Keys are fully qualified ("splitString.connector"). Unset keys report
// their default; unknown keys report false.
func (s *Store) Get(key string, scopes scope.Stack) (any, bool) {
	name, ok := strings.CutPrefix(key, Section+".")
	if !ok || !knownName(name) {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.lookup(name, scopes); ok {
		return cloneValue(v), true
	}
	return s.defaultValue(name, scopes), true
}

// Resolve builds the decider configuration for scopes.
func (s *Store) Resolve(scopes scope.Stack) splitter.Config {
	return Resolve(s, scopes)
}

// LogLevel returns the configured logging level, or "" when unset.
func (s *Store) LogLevel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logLevel
}

// Overrides returns a copy of the scoped overrides in document order.
func (s *Store) Overrides() []Override {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Override, len(s.overrides))
	for i, o := range s.overrides {
		out[i] = Override{Selector: o.Selector, Values: cloneValues(o.Values)}
	}
	return out
}

// lookup finds the explicit value for name: the most specific matching
// override first, then the section itself. Callers hold s.mu.
func (s *Store) lookup(name string, scopes scope.Stack) (any, bool) {
	best := -1
	var found any
	for _, o := range s.overrides {
		v, ok := o.Values[name]
		if !ok || !o.Selector.Matches(scopes) {
			continue
		}
		if spec := o.Selector.Specificity(); spec >= best {
			best = spec
			found = v
		}
	}
	if best >= 0 {
		return found, true
	}

	v, ok := s.values[name]
	return v, ok
}

// defaultValue returns the value name takes when nothing sets it. The list
// and heuristic defaults follow the effective preset. Callers hold s.mu.
func (s *Store) defaultValue(name string, scopes scope.Stack) any {
	preset := splitter.PresetDefault
	if v, ok := s.lookup(namePreset, scopes); ok {
		preset = v.(string)
	}
	cfg, err := splitter.PresetConfig(preset)
	if err != nil {
		cfg = splitter.DefaultConfig()
	}

	switch name {
	case nameConnector:
		return cfg.Connector
	case namePreset:
		return preset
	case nameScopesToIgnore:
		return append([]string{}, cfg.ScopesToIgnore...)
	case nameJSXHeuristics:
		return len(cfg.Rules) > 0
	}
	return nil
}

func knownName(name string) bool {
	switch name {
	case nameConnector, nameScopesToIgnore, namePreset, nameJSXHeuristics:
		return true
	}
	return false
}

func parseSection(doc map[string]any) (map[string]any, []Override, error) {
	raw, ok := doc[Section]
	if !ok {
		return map[string]any{}, nil, nil
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &ValueError{Path: Section, Expected: "table", Value: raw}
	}

	values := make(map[string]any)
	var overrides []Override

	for name, v := range section {
		if name == nameScoped {
			parsed, err := parseOverrides(v)
			if err != nil {
				return nil, nil, err
			}
			overrides = parsed
			continue
		}
		val, err := parseValue(Section+"."+name, name, v)
		if err != nil {
			return nil, nil, err
		}
		values[name] = val
	}

	return values, overrides, nil
}

func parseOverrides(raw any) ([]Override, error) {
	path := Section + "." + nameScoped
	list, ok := raw.([]any)
	if !ok {
		return nil, &ValueError{Path: path, Expected: "list of tables", Value: raw}
	}

	overrides := make([]Override, 0, len(list))
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, &ValueError{Path: itemPath, Expected: "table", Value: item}
		}

		sel, ok := entry[nameSelector].(string)
		if !ok || strings.TrimSpace(sel) == "" {
			return nil, &ValueError{Path: itemPath + "." + nameSelector, Expected: "non-empty string", Value: entry[nameSelector]}
		}

		o := Override{Selector: scope.ParseSelector(sel), Values: make(map[string]any)}
		for name, v := range entry {
			if name == nameSelector {
				continue
			}
			val, err := parseValue(itemPath+"."+name, name, v)
			if err != nil {
				return nil, err
			}
			o.Values[name] = val
		}
		overrides = append(overrides, o)
	}

	return overrides, nil
}

func parseValue(path, name string, v any) (any, error) {
	switch name {
	case nameConnector:
		s, ok := v.(string)
		if !ok {
			return nil, &ValueError{Path: path, Expected: "string", Value: v}
		}
		return s, nil

	case namePreset:
		s, ok := v.(string)
		if _, known := splitter.Presets[s]; !ok || !known {
			return nil, &ValueError{Path: path, Expected: "one of " + strings.Join(PresetNames(), ", "), Value: v}
		}
		return s, nil

	case nameScopesToIgnore:
		list, ok := toStrings(v)
		if !ok {
			return nil, &ValueError{Path: path, Expected: "list of strings", Value: v}
		}
		return list, nil

	case nameJSXHeuristics:
		b, ok := v.(bool)
		if !ok {
			return nil, &ValueError{Path: path, Expected: "boolean", Value: v}
		}
		return b, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, path)
}

func parseLogLevel(doc map[string]any) (string, error) {
	logging, ok := doc["logging"].(map[string]any)
	if !ok {
		return "", nil
	}
	raw, ok := logging["level"]
	if !ok {
		return "", nil
	}
	level, ok := raw.(string)
	if !ok {
		return "", &ValueError{Path: KeyLogLevel, Expected: "string", Value: raw}
	}
	return level, nil
}

// PresetNames returns the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(splitter.Presets))
	for name := range splitter.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toStrings(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...), true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func cloneValue(v any) any {
	if list, ok := v.([]string); ok {
		return append([]string{}, list...)
	}
	return v
}

func cloneValues(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}
