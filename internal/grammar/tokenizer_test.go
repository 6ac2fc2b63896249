package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/splitstring/internal/scope"
)

func tokenize(t *testing.T, g *Grammar, lines ...string) []Line {
	t.Helper()
	var st State
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		var line Line
		line, st = g.TokenizeLine(l, st)
		require.Equal(t, len([]rune(l)), line.Len())
		out = append(out, line)
	}
	return out
}

func assertScopes(t *testing.T, line Line, col int, want ...string) {
	t.Helper()
	if diff := cmp.Diff(scope.Stack(want), line.At(col)); diff != "" {
		t.Errorf("scopes at column %d (-want +got):\n%s", col, diff)
	}
}

func TestTokenizeJavaScriptStrings(t *testing.T) {
	line := tokenize(t, JavaScript(), `x = 'ab' + "cd"; // 'no'`)[0]

	assertScopes(t, line, 0, "source.js")
	assertScopes(t, line, 4, "source.js", "string.quoted.single.js", "punctuation.definition.string.begin.js")
	assertScopes(t, line, 5, "source.js", "string.quoted.single.js")
	assertScopes(t, line, 7, "source.js", "string.quoted.single.js", "punctuation.definition.string.end.js")
	assertScopes(t, line, 8, "source.js")
	assertScopes(t, line, 12, "source.js", "string.quoted.double.js")
	assertScopes(t, line, 21, "source.js", "comment.line.js")
	assertScopes(t, line, 24, "source.js")
	assertScopes(t, line, 100, "source.js")
}

func TestTokenizeEscapes(t *testing.T) {
	line := tokenize(t, JavaScript(), `'a\'b'`)[0]

	assertScopes(t, line, 2, "source.js", "string.quoted.single.js", "constant.character.escape.js")
	assertScopes(t, line, 3, "source.js", "string.quoted.single.js", "constant.character.escape.js")
	assertScopes(t, line, 4, "source.js", "string.quoted.single.js")
	assertScopes(t, line, 5, "source.js", "string.quoted.single.js", "punctuation.definition.string.end.js")
}

func TestTokenizeUnterminatedStringEndsAtLineEnd(t *testing.T) {
	lines := tokenize(t, JavaScript(), `x = 'abc`, `y = 1`)

	assertScopes(t, lines[0], 6, "source.js", "string.quoted.single.js")
	assertScopes(t, lines[0], 8, "source.js")
	assertScopes(t, lines[1], 0, "source.js")
}

func TestTokenizeMultiLineConstructs(t *testing.T) {
	lines := tokenize(t, JavaScript(),
		"a = `one",
		"two` + '3'",
		"/* start",
		"'not a string' */ 'x'",
	)

	assertScopes(t, lines[0], 6, "source.js", "string.quoted.template.js")
	assertScopes(t, lines[0], 8, "source.js", "string.quoted.template.js")
	assertScopes(t, lines[1], 1, "source.js", "string.quoted.template.js")
	assertScopes(t, lines[1], 8, "source.js", "string.quoted.single.js")
	assertScopes(t, lines[3], 2, "source.js", "comment.block.js")
	assertScopes(t, lines[3], 19, "source.js", "string.quoted.single.js")
}

func TestTokenizeJSX(t *testing.T) {
	text := `<div className="a b" onClick={() => f('x')}>hi 'there'</div>`
	line := tokenize(t, JSX(), text)[0]

	assertScopes(t, line, 0, "source.js.jsx", "meta.tag.jsx")
	assertScopes(t, line, 16, "source.js.jsx", "meta.tag.jsx", "string.quoted.double.js")
	assertScopes(t, line, 29, "source.js.jsx", "meta.tag.jsx", "punctuation.section.embedded.begin.jsx")
	assertScopes(t, line, 34, "source.js.jsx", "meta.tag.jsx", "meta.embedded.expression.js", "source.js.jsx")
	assertScopes(t, line, 39, "source.js.jsx", "meta.tag.jsx", "meta.embedded.expression.js", "source.js.jsx", "string.quoted.single.js")
	assertScopes(t, line, 42, "source.js.jsx", "meta.tag.jsx", "punctuation.section.embedded.end.jsx")
	assertScopes(t, line, 43, "source.js.jsx", "meta.tag.jsx")
	assertScopes(t, line, 48, "source.js.jsx")
	assertScopes(t, line, len(text)-1, "source.js.jsx", "meta.tag.jsx")
	assertScopes(t, line, len(text), "source.js.jsx")
}

func TestTokenizeJSXAcrossLines(t *testing.T) {
	lines := tokenize(t, JSX(),
		"return <Button",
		`  label="Save"`,
		"  onClick={save} />",
		"const a = 'b'",
	)

	assertScopes(t, lines[1], 10, "source.js.jsx", "meta.tag.jsx", "string.quoted.double.js")
	assertScopes(t, lines[2], 12, "source.js.jsx", "meta.tag.jsx", "meta.embedded.expression.js", "source.js.jsx")
	assertScopes(t, lines[3], 11, "source.js.jsx", "string.quoted.single.js")
}

func TestTokenizeLessThanIsNotATag(t *testing.T) {
	for _, text := range []string{`if (a < b) s = 'x'`, `if (a<b) s = 'x'`, `f(x)<y; s = 'x'`} {
		line := tokenize(t, JSX(), text)[0]
		last := len(text) - 2
		assertScopes(t, line, last, "source.js.jsx", "string.quoted.single.js")
	}
}

func TestTokenizePHP(t *testing.T) {
	line := tokenize(t, PHP(), `$a = 'x' . "y"; # 'c'`)[0]

	assertScopes(t, line, 6, "text.html.php", "meta.embedded.block.php", "source.php", "string.quoted.single.php")
	assertScopes(t, line, 12, "text.html.php", "meta.embedded.block.php", "source.php", "string.quoted.double.php")
	assertScopes(t, line, 19, "text.html.php", "meta.embedded.block.php", "source.php", "comment.line.php")
}

func TestTokenizePythonBlockStrings(t *testing.T) {
	lines := tokenize(t, Python(), `doc = """one`, `two""" + 'x'`)

	assertScopes(t, lines[0], 9, "source.python", "string.quoted.block.python")
	assertScopes(t, lines[1], 0, "source.python", "string.quoted.block.python")
	assertScopes(t, lines[1], 10, "source.python", "string.quoted.single.python")
}

func TestTokenizeLuaComments(t *testing.T) {
	lines := tokenize(t, Lua(), `--[[ 'a'`, `]] s = 'b' -- 'c'`)

	assertScopes(t, lines[0], 6, "source.lua", "comment.block.lua")
	assertScopes(t, lines[1], 8, "source.lua", "string.quoted.single.lua")
	assertScopes(t, lines[1], 15, "source.lua", "comment.line.lua")
}

func TestTokenizeGoRunes(t *testing.T) {
	line := tokenize(t, Go(), `r, s := 'x', "y"`)[0]

	assertScopes(t, line, 9, "source.go", "constant.other.rune.go")
	assertScopes(t, line, 14, "source.go", "string.quoted.double.go")
}

func TestStateEqual(t *testing.T) {
	g := JSX()
	_, a := g.TokenizeLine("<div", State{})
	_, b := g.TokenizeLine("<span", State{})
	_, c := g.TokenizeLine("x", State{})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, c.Equal(State{}))
}
