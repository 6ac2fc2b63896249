package loader

import (
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ValueKind says how an environment variable's text is decoded.
type ValueKind int

const (
	// KindString keeps the raw text.
	KindString ValueKind = iota
	// KindBool accepts true/false, yes/no, on/off and 1/0.
	KindBool
	// KindList accepts a JSON array or a comma separated list.
	KindList
)

// EnvVar maps an environment variable to a config path.
type EnvVar struct {
	Path string
	Kind ValueKind
}

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]EnvVar
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader with the default splitstring mapping.
func NewEnvLoader() *EnvLoader {
	return NewEnvLoaderWithMapping(DefaultEnvMapping())
}

// NewEnvLoaderWithMapping creates a loader with custom mappings.
func NewEnvLoaderWithMapping(mapping map[string]EnvVar) *EnvLoader {
	return &EnvLoader{mapping: mapping, lookup: os.LookupEnv}
}

// DefaultEnvMapping returns the environment variables read by default.
func DefaultEnvMapping() map[string]EnvVar {
	return map[string]EnvVar{
		"SPLITSTRING_CONNECTOR":        {Path: "splitString.connector"},
		"SPLITSTRING_SCOPES_TO_IGNORE": {Path: "splitString.scopesToIgnore", Kind: KindList},
		"SPLITSTRING_PRESET":           {Path: "splitString.preset"},
		"SPLITSTRING_JSX_HEURISTICS":   {Path: "splitString.jsxHeuristics", Kind: KindBool},
		"SPLITSTRING_LOG_LEVEL":        {Path: "logging.level"},
	}
}

// Load reads the mapped environment variables into a configuration map.
// Empty values count as set. Values that fail to decode are skipped.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, v := range l.mapping {
		raw, ok := l.lookup(env)
		if !ok {
			continue
		}
		val, ok := parseValue(raw, v.Kind)
		if !ok {
			continue
		}
		SetPath(config, v.Path, val)
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar string, v EnvVar) {
	if l.mapping == nil {
		l.mapping = make(map[string]EnvVar)
	}
	l.mapping[envVar] = v
}

func parseValue(s string, kind ValueKind) (any, bool) {
	switch kind {
	case KindBool:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes", "on":
			return true, true
		case "false", "no", "off":
			return false, true
		}
		b, err := strconv.ParseBool(s)
		return b, err == nil
	case KindList:
		return parseList(s), true
	default:
		return s, true
	}
}

func parseList(s string) []any {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") && gjson.Valid(trimmed) {
		var out []any
		for _, item := range gjson.Parse(trimmed).Array() {
			out = append(out, item.String())
		}
		return out
	}

	out := []any{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SetPath sets a value in a nested map using a dot separated path.
func SetPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// GetPath reads a value from a nested map using a dot separated path.
func GetPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = data

	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
