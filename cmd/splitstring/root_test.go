package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/splitstring/internal/scope"
)

const jsSource = "const a = 'hello world';\n"

// run executes the root command with the environment and user config
// directory isolated from the machine running the tests.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-env"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    scope.Position
		wantErr bool
	}{
		{in: "1:1", want: scope.Position{}},
		{in: "3:18", want: scope.Position{Row: 2, Column: 17}},
		{in: " 2:4 ", want: scope.Position{Row: 1, Column: 3}},
		{in: "0:1", wantErr: true},
		{in: "1:0", wantErr: true},
		{in: "1", wantErr: true},
		{in: "a:b", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePosition(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidPosition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecideText(t *testing.T) {
	path := writeFile(t, "a.js", jsSource)

	out, err := run(t, "decide", path, "--at", "1:18")
	require.NoError(t, err)
	assert.Contains(t, out, "eligible     true")
	assert.Contains(t, out, "kind         single")
	assert.Contains(t, out, `connector    " +"`)
	assert.Contains(t, out, `replacement  "' +\n'"`)
	assert.Contains(t, out, "string.quoted.single.js")
}

func TestDecideJSON(t *testing.T) {
	path := writeFile(t, "a.js", jsSource)

	out, err := run(t, "decide", path, "--at", "1:18", "-o", "json")
	require.NoError(t, err)
	assert.True(t, gjson.Valid(out))
	assert.True(t, gjson.Get(out, "eligible").Bool())
	assert.Equal(t, "single", gjson.Get(out, "kind").String())
	assert.Equal(t, "'", gjson.Get(out, "quote").String())
	assert.Equal(t, "' +\n'", gjson.Get(out, "replacement").String())

	out, err = run(t, "decide", path, "--at", "1:3", "-o", "json")
	require.NoError(t, err)
	assert.False(t, gjson.Get(out, "eligible").Bool())
	assert.Equal(t, "not inside a quoted string", gjson.Get(out, "reason").String())
	assert.False(t, gjson.Get(out, "replacement").Exists())
}

func TestDecideErrors(t *testing.T) {
	path := writeFile(t, "a.js", jsSource)

	_, err := run(t, "decide", path)
	assert.Error(t, err)

	_, err = run(t, "decide", path, "--at", "x")
	assert.ErrorIs(t, err, errInvalidPosition)

	_, err = run(t, "decide", path, "--at", "1:18", "-o", "xml")
	assert.Error(t, err)

	_, err = run(t, "decide", path, "--at", "9:1")
	assert.Error(t, err)

	_, err = run(t, "decide", filepath.Join(t.TempDir(), "missing.js"), "--at", "1:1")
	assert.Error(t, err)
}

func TestSplitPrints(t *testing.T) {
	path := writeFile(t, "a.js", jsSource)

	out, err := run(t, "split", path, "--at", "1:18")
	require.NoError(t, err)
	assert.Equal(t, "const a = 'hello ' +\n'world';\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, jsSource, string(data), "file untouched without -w")
}

func TestSplitWrite(t *testing.T) {
	path := writeFile(t, "a.php", "<?php\n  $a = \"hello\";\n")

	_, err := run(t, "split", path, "--at", "2:11", "-w")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<?php\n  $a = \"he\".\n  \"llo\";\n", string(data))
}

func TestSplitConnectorFlag(t *testing.T) {
	path := writeFile(t, "a.js", jsSource)

	out, err := run(t, "--connector= .", "split", path, "--at", "1:18")
	require.NoError(t, err)
	assert.Equal(t, "const a = 'hello ' .\n'world';\n", out)
}

func TestSplitAborts(t *testing.T) {
	path := writeFile(t, "a.js", jsSource)

	_, err := run(t, "split", path, "--at", "1:25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cursor at end of line")

	json := writeFile(t, "a.json", `{"a": "hello"}`)
	_, err = run(t, "split", json, "--at", "1:10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scope is ignored")
}

func TestSplitGrammarFlag(t *testing.T) {
	path := writeFile(t, "snippet.txt", "x = 'hello'\n")

	_, err := run(t, "split", path, "--at", "1:8")
	assert.Error(t, err, "no grammar for .txt")

	out, err := run(t, "-g", "lua", "split", path, "--at", "1:8")
	require.NoError(t, err)
	assert.Equal(t, "x = 'he' +\n'llo'\n", out)
}

func TestScopes(t *testing.T) {
	path := writeFile(t, "a.js", jsSource)

	out, err := run(t, "scopes", path, "--at", "1:18")
	require.NoError(t, err)
	assert.Equal(t, "source.js\nstring.quoted.single.js\n", out)

	out, err = run(t, "scopes", path, "--at", "1:18", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "single", gjson.Get(out, "kind").String())
	assert.Equal(t, "string.quoted.single.js", gjson.Get(out, "scopes.1").String())
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, `connector       " +"`)
	assert.Contains(t, out, "scopesToIgnore  source.json")
	assert.Contains(t, out, "jsxHeuristics   true")

	out, err = run(t, "--preset", "classic", "config", "-o", "json")
	require.NoError(t, err)
	assert.False(t, gjson.Get(out, "jsxHeuristics").Bool())
	assert.Equal(t, "meta.tag.jsx", gjson.Get(out, "scopesToIgnore.0").String())

	_, err = run(t, "--preset", "nope", "config")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "config.toml", `
[logging]
level = "warn"

[splitString]
connector = " +"

[[splitString.scoped]]
selector = ".source.lua"
connector = " .."
`)

	out, err := run(t, "--config", cfgPath, "config", "--scopes", "source.lua string.quoted.single.lua", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, cfgPath, gjson.Get(out, "path").String())
	assert.Equal(t, " ..", gjson.Get(out, "connector").String())
	assert.Equal(t, "warn", gjson.Get(out, "logLevel").String())

	out, err = run(t, "--config", cfgPath, "config", "--scopes", "source.js", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, " +", gjson.Get(out, "connector").String())
}

func TestKeys(t *testing.T) {
	out, err := run(t, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "editor.splitString (else editor.insertNewline)")
	assert.Contains(t, out, "file.save")
}

func TestLuaEval(t *testing.T) {
	out, err := run(t, "lua", "-e", `
local s = require("splitstring")
print(s.connector({"source.php", "string.quoted.double.php"}))
print(s.classify({"source.js", "string.quoted.single.js"}))
`)
	require.NoError(t, err)
	assert.Equal(t, ".\nsingle\n", out)
}

func TestLuaScript(t *testing.T) {
	script := writeFile(t, "check.lua", `
local s = require("splitstring")
local d = s.decide(3, "x = 'abc'", {"source.lua", "string.quoted.single.lua"}, {"source.lua"})
print(d.reason)
`)

	out, err := run(t, "lua", script)
	require.NoError(t, err)
	assert.Equal(t, "string kind differs before cursor\n", out)

	_, err = run(t, "lua")
	assert.Error(t, err)

	_, err = run(t, "lua", "--timeout", "50ms", "-e", "while true do end")
	assert.Error(t, err)
}
