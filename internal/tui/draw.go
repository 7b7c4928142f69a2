package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"initiative-tracker/internal/config"
)

// hudHeight is the rows reserved below the roster: separator, messages,
// key hints and the prompt line.
const hudHeight = 6

// Styles are the resolved theme colours.
type Styles struct {
	Current tcell.Style
	Text    tcell.Style
	Dim     tcell.Style
	Message tcell.Style
	Prompt  tcell.Style
}

// NewStyles resolves colour names; unknown names fall back to the terminal default.
func NewStyles(th config.Theme) Styles {
	return Styles{
		Current: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.GetColor(th.Current)).Bold(true),
		Text:    tcell.StyleDefault.Foreground(tcell.GetColor(th.Text)),
		Dim:     tcell.StyleDefault.Foreground(tcell.GetColor(th.Dim)),
		Message: tcell.StyleDefault.Foreground(tcell.GetColor(th.Message)),
		Prompt:  tcell.StyleDefault.Foreground(tcell.GetColor(th.Current)).Bold(true),
	}
}

// draw renders the roster, message log, hints and any open prompt.
func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	putText(a.screen, 0, 0, "Initiative Tracker", a.styles.Dim.Bold(true))
	a.drawRoster(w, h-hudHeight-2)

	hudY := h - hudHeight
	a.drawHLine(hudY, w)

	start := len(a.messages) - (hudHeight - 3)
	if start < 0 {
		start = 0
	}
	for i, msg := range a.messages[start:] {
		putText(a.screen, 0, hudY+1+i, runewidth.Truncate(msg, w, "…"), a.styles.Message)
	}

	putText(a.screen, 0, h-2, runewidth.Truncate(helpLines[0], w, "…"), a.styles.Dim)
	if a.form != nil {
		prompt := a.form.label() + ": " + string(a.form.buf) + "_"
		putText(a.screen, 0, h-1, runewidth.Truncate(prompt, w, "…"), a.styles.Prompt)
	}

	a.screen.Show()
}

// drawRoster shows the engine's rendering line by line from row 2, with the
// current creature's row highlighted across the full width.
func (a *App) drawRoster(w, rows int) {
	if a.order.Len() == 0 {
		putText(a.screen, 0, 2, "No creatures yet. Press a to add one.", a.styles.Dim)
		return
	}
	lines := strings.Split(strings.TrimSuffix(a.order.String(), "\n"), "\n")

	// Keep the current row visible on short screens.
	first := 0
	if cur := a.order.Current(); rows > 0 && cur >= rows {
		first = cur - rows + 1
	}
	for i := first; i < len(lines) && i-first < rows; i++ {
		style := a.styles.Text
		line := runewidth.Truncate(lines[i], w, "…")
		if i == a.order.Current() {
			style = a.styles.Current
			line = runewidth.FillRight(line, w)
		}
		putText(a.screen, 0, 2+i-first, line, style)
	}
}

func (a *App) drawHLine(y, w int) {
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, y, '─', nil, a.styles.Dim)
	}
}

// putText writes a string to the screen starting at (x, y), advancing by
// each rune's display width. It stops at the right edge of the screen.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}
