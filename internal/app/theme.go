package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the editor colors as hex strings.
type Theme struct {
	Foreground       string
	Background       string
	StatusForeground string
	StatusBackground string
	Error            string

	// Scopes maps scope names to foreground colors. A name matches a label
	// equal to it or starting with it followed by a dot.
	Scopes map[string]string
}

// DefaultTheme returns a dark theme.
func DefaultTheme() Theme {
	return Theme{
		Foreground:       "#d4d4d4",
		Background:       "#1e1e1e",
		StatusForeground: "#ffffff",
		StatusBackground: "#005f87",
		Error:            "#f44747",
		Scopes: map[string]string{
			"string.quoted":             "#ce9178",
			"constant.character.escape": "#d7ba7d",
			"comment":                   "#6a9955",
			"meta.tag.jsx":              "#569cd6",
		},
	}
}

// palette is a Theme resolved to tcell styles.
type palette struct {
	text   tcell.Style
	status tcell.Style
	err    tcell.Style
	scopes map[string]tcell.Style
}

func (t Theme) palette() palette {
	base := tcell.StyleDefault.
		Foreground(hexColor(t.Foreground)).
		Background(hexColor(t.Background))

	p := palette{
		text: base,
		status: tcell.StyleDefault.
			Foreground(hexColor(t.StatusForeground)).
			Background(hexColor(t.StatusBackground)),
		scopes: make(map[string]tcell.Style, len(t.Scopes)),
	}
	p.err = p.status.Foreground(hexColor(t.Error)).Bold(true)
	for name, hex := range t.Scopes {
		p.scopes[name] = base.Foreground(hexColor(hex))
	}
	return p
}

// hexColor parses a hex color. Invalid values yield the terminal default.
func hexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// styleFor returns the style of the innermost label that has a color.
func (p palette) styleFor(labels []string) tcell.Style {
	for i := len(labels) - 1; i >= 0; i-- {
		name := labels[i]
		for name != "" {
			if st, ok := p.scopes[name]; ok {
				return st
			}
			dot := strings.LastIndexByte(name, '.')
			if dot < 0 {
				break
			}
			name = name[:dot]
		}
	}
	return p.text
}
