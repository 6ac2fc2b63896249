package app

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/splitstring/internal/scope"
)

// Render draws the visible rows and the status line.
func (app *Application) Render() {
	if app.screen == nil {
		return
	}
	s := app.screen
	width, height := s.Size()
	if width <= 0 || height <= 0 {
		return
	}
	rows := height - 1

	s.Clear()
	cur := app.doc.CursorPosition()
	app.scrollTo(cur.Row, rows)

	cursorX := -1
	for y := 0; y < rows; y++ {
		row := app.topRow + y
		if row >= app.doc.LineCount() {
			break
		}
		x := 0
		for col, r := range []rune(app.doc.LineText(row)) {
			if row == cur.Row && col == cur.Column {
				cursorX = x
			}
			w := runeWidth(r)
			if x+w > width {
				break
			}
			style := app.palette.styleFor(app.doc.ScopesAt(scope.Position{Row: row, Column: col}))
			if r == '\t' {
				r = ' '
			}
			s.SetContent(x, y, r, nil, style)
			x += w
		}
		if row == cur.Row && cursorX < 0 {
			cursorX = x
		}
	}

	if cursorX >= 0 && cursorX < width {
		s.ShowCursor(cursorX, cur.Row-app.topRow)
	} else {
		s.HideCursor()
	}

	app.renderStatus(width, height-1)
	s.Show()
}

// scrollTo keeps row inside a window of the given height.
func (app *Application) scrollTo(row, rows int) {
	if rows <= 0 {
		return
	}
	if row < app.topRow {
		app.topRow = row
	}
	if row >= app.topRow+rows {
		app.topRow = row - rows + 1
	}
}

func (app *Application) renderStatus(width, y int) {
	app.mu.Lock()
	msg, isErr := app.status, app.statusError
	app.mu.Unlock()

	name := "[scratch]"
	if path := app.doc.Path(); path != "" {
		name = filepath.Base(path)
	}
	if app.doc.Modified() {
		name += " [+]"
	}
	cur := app.doc.CursorPosition()
	left := fmt.Sprintf(" %s  %d:%d  %s", name, cur.Row+1, cur.Column+1, app.doc.Grammar().Name())

	style := app.palette.status
	x := drawText(app.screen, 0, y, width, left, style)
	if msg != "" {
		if isErr {
			style = app.palette.err
		}
		x = drawText(app.screen, x, y, width, "  "+msg, style)
	}
	for ; x < width; x++ {
		app.screen.SetContent(x, y, ' ', nil, app.palette.status)
	}
}

// drawText draws s from x and returns the column after it.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runeWidth(r)
		if x+w > width {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// runeWidth returns the display width of r; control runes and tabs take
// one cell.
func runeWidth(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 1
	}
	if w := uniseg.StringWidth(string(r)); w > 0 {
		return w
	}
	return 1
}
