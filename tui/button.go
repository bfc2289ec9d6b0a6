package tui

import "github.com/gdamore/tcell/v2"

// Button is a single action row; activation is the owning mode's concern.
type Button struct {
	Label string
}

// Draw renders the button centered within width w.
func (b Button) Draw(s tcell.Screen, x, y, w int, focused bool, th Theme) {
	style := tcell.StyleDefault.Foreground(th.Fg).Background(th.HeaderBg)
	if focused {
		style = tcell.StyleDefault.Foreground(th.Title).Background(th.FocusBg).Bold(true)
	}
	FillRect(s, Rect{X: x, Y: y, W: w, H: 1}, style)
	TextCentered(s, x, y, w, b.Label, style)
}
