package splitter

import "fmt"

// DefaultConnector is the connector used when none is configured.
const DefaultConnector = " +"

// DotConnector replaces the default connector in languages that concatenate
// with ".".
const DotConnector = "."

// dotScopes are root scopes whose languages concatenate with ".".
var dotScopes = []string{"source.hack", "source.php"}

// IndexRule suppresses splitting when the last occurrence of Inner sits
// deeper in the stack than the last occurrence of Outer. A missing label
// counts as index -1.
type IndexRule struct {
	Inner string
	Outer string
}

// JSXRules approximate "inside a JSX tag attribute, not inside an embedded
// expression".
var JSXRules = []IndexRule{
	{Inner: "meta.tag.jsx", Outer: "source.js.jsx"},
	{Inner: "meta.tag.block.begin.jsx", Outer: "source.js.jsx"},
	{Inner: "tag.open.js", Outer: "meta.brace.curly.js"},
}

// Config is a read-only snapshot of the settings for one invocation.
type Config struct {
	// Connector is inserted after the closing quote.
	Connector string

	// ScopesToIgnore suppresses splitting when any label matches exactly.
	ScopesToIgnore []string

	// Rules are additional suppression heuristics.
	Rules []IndexRule
}

// Preset names.
const (
	PresetDefault = "default"
	PresetClassic = "classic"
)

// Presets are the built-in configurations. "default" ignores JSON documents
// and applies the JSX heuristics; "classic" only ignores JSX tags.
var Presets = map[string]Config{
	PresetDefault: {
		Connector:      DefaultConnector,
		ScopesToIgnore: []string{"source.json"},
		Rules:          JSXRules,
	},
	PresetClassic: {
		Connector:      DefaultConnector,
		ScopesToIgnore: []string{"meta.tag.jsx"},
	},
}

// DefaultConfig returns a copy of the default preset.
func DefaultConfig() Config {
	cfg, _ := PresetConfig(PresetDefault)
	return cfg
}

// PresetConfig returns a copy of the named preset.
func PresetConfig(name string) (Config, error) {
	p, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q", name)
	}
	return p.Clone(), nil
}

// Clone returns a deep copy of the config.
func (c Config) Clone() Config {
	out := Config{Connector: c.Connector}
	if c.ScopesToIgnore != nil {
		out.ScopesToIgnore = append([]string(nil), c.ScopesToIgnore...)
	}
	if c.Rules != nil {
		out.Rules = append([]IndexRule(nil), c.Rules...)
	}
	return out
}
