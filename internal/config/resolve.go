package config

import (
	"github.com/dshills/splitstring/internal/scope"
	"github.com/dshills/splitstring/internal/splitter"
)

// Getter reads scoped settings. host.Settings satisfies it.
type Getter interface {
	Get(key string, scopes scope.Stack) (any, bool)
}

// Resolve builds a decider configuration from the settings visible at
// scopes. The preset supplies the base; explicit settings override it.
// Values of the wrong type are ignored.
func Resolve(g Getter, scopes scope.Stack) splitter.Config {
	cfg := splitter.DefaultConfig()
	if g == nil {
		return cfg
	}

	if v, ok := g.Get(KeyPreset, scopes); ok {
		if name, ok := v.(string); ok {
			if preset, err := splitter.PresetConfig(name); err == nil {
				cfg = preset
			}
		}
	}

	if v, ok := g.Get(KeyConnector, scopes); ok {
		if s, ok := v.(string); ok {
			cfg.Connector = s
		}
	}

	if v, ok := g.Get(KeyScopesToIgnore, scopes); ok {
		if list, ok := toStrings(v); ok {
			cfg.ScopesToIgnore = list
		}
	}

	if v, ok := g.Get(KeyJSXHeuristics, scopes); ok {
		if on, ok := v.(bool); ok {
			cfg.Rules = nil
			if on {
				cfg.Rules = append([]splitter.IndexRule(nil), splitter.JSXRules...)
			}
		}
	}

	return cfg
}
