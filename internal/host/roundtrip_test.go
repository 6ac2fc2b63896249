package host

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/splitstring/internal/grammar"
	"github.com/dshills/splitstring/internal/scope"
	"github.com/dshills/splitstring/internal/splitter"
)

// Splitting a string must leave both halves classified as the original kind.
func TestSplitPreservesStringKind(t *testing.T) {
	cases := []struct {
		g    *grammar.Grammar
		text string
	}{
		{grammar.JavaScript(), `  const msg = 'hello world' + "and more";`},
		{grammar.JSX(), `	const a = <a onClick={() => go('some/path')}>x</a>`},
		{grammar.PHP(), `    $greeting = "Hi " . 'there';`},
		{grammar.Python(), `print('a b c', "d\te")`},
		{grammar.Ruby(), `puts 'héllo wörld'`},
		{grammar.Lua(), `local s = "one" .. 'two' -- 'x'`},
		{grammar.Go(), `	s := "a\"b c"`},
	}

	cfg := splitter.DefaultConfig()
	checked := 0

	for _, tc := range cases {
		length := len([]rune(tc.text))
		for col := 0; col <= length; col++ {
			probe := NewDocument("", tc.text, tc.g)
			pos := scope.Position{Row: 0, Column: col}
			at := probe.ScopesAt(pos)
			before := probe.ScopesAt(pos.Before())

			d := splitter.Decide(pos, tc.text, at, before, cfg)
			if !d.Eligible || splitsEscape(at, before) {
				continue
			}
			checked++

			t.Run(fmt.Sprintf("%s/%d", tc.g.Name(), col), func(t *testing.T) {
				doc := NewDocument("", tc.text, tc.g)
				require.NoError(t, doc.SetCursor(pos))
				require.NoError(t, doc.InsertText(d.Replacement()))

				lead := len([]rune(d.LeadingWhitespace))
				checks := []scope.Position{
					{Row: 0, Column: col - 1},  // last body rune of the left half
					{Row: 0, Column: col},      // new closing quote
					{Row: 1, Column: lead},     // new opening quote
					{Row: 1, Column: lead + 1}, // first body rune of the right half
				}
				for _, p := range checks {
					assert.Equal(t, d.Kind, splitter.Classify(doc.ScopesAt(p)), "position %s in %q", p, doc.Text())
				}
				assert.Equal(t, splitter.KindNone, splitter.Classify(doc.ScopesAt(scope.Position{Row: 0, Column: col + 1})),
					"connector must be outside the string in %q", doc.Text())
			})
		}
	}

	assert.Greater(t, checked, 20)
}

func splitsEscape(at, before scope.Stack) bool {
	return at.HasPrefix("constant.character.escape") && before.HasPrefix("constant.character.escape")
}
