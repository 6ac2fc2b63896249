package loader

import (
	"io"

	"github.com/tidwall/gjson"
)

// JSONLoader loads configuration from JSON files.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a JSON loader for path on the OS file system.
func NewJSONLoader(path string) *JSONLoader {
	return NewJSONLoaderWithFS(DefaultFS(), path)
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{fs: fs, path: path}
}

// Load reads configuration from the configured path.
func (l *JSONLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from a specific path.
func (l *JSONLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := readFile(l.fs, path)
	if err != nil || data == nil {
		return nil, err
	}
	return parseJSON(path, data)
}

// LoadFromReader reads configuration from an io.Reader.
func (l *JSONLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return parseJSON("<reader>", data)
}

func parseJSON(source string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: source, Message: "invalid JSON"}
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, &ParseError{Path: source, Message: "top level must be an object"}
	}
	config, _ := jsonValue(result).(map[string]any)
	return config, nil
}

// jsonValue converts a gjson result into plain Go values. Whole numbers
// become int64 to match the other formats.
func jsonValue(r gjson.Result) any {
	switch {
	case r.IsObject():
		m := make(map[string]any)
		r.ForEach(func(key, value gjson.Result) bool {
			m[key.String()] = jsonValue(value)
			return true
		})
		return m
	case r.IsArray():
		items := r.Array()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = jsonValue(item)
		}
		return out
	}

	switch r.Type {
	case gjson.String:
		return r.String()
	case gjson.True, gjson.False:
		return r.Bool()
	case gjson.Number:
		if f := r.Float(); f == float64(int64(f)) {
			return int64(f)
		}
		return r.Float()
	default:
		return nil
	}
}
