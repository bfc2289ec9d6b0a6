package tui

import (
	"github.com/gdamore/tcell/v2"
)

// ArrowSelector cycles through a fixed option list with left/right arrows.
// Selection state lives here; the owning mode reads Selected after a change.
type ArrowSelector struct {
	Label   string
	Options []string
	Index   int
}

// NewArrowSelector starts at the given option index.
func NewArrowSelector(label string, options []string, index int) *ArrowSelector {
	if index < 0 || index >= len(options) {
		index = 0
	}
	return &ArrowSelector{Label: label, Options: options, Index: index}
}

// Selected returns the current option.
func (a *ArrowSelector) Selected() string {
	return a.Options[a.Index]
}

// Prev moves one option left. Returns true if the selection changed.
func (a *ArrowSelector) Prev() bool {
	if a.Index == 0 {
		return false
	}
	a.Index--
	return true
}

// Next moves one option right. Returns true if the selection changed.
func (a *ArrowSelector) Next() bool {
	if a.Index >= len(a.Options)-1 {
		return false
	}
	a.Index++
	return true
}

// Draw renders "Label  ◀ option ▶" within width w. Arrows dim at the ends of
// the option list.
func (a *ArrowSelector) Draw(s tcell.Screen, x, y, w int, focused bool, th Theme) {
	bg := th.Bg
	if focused {
		bg = th.FocusBg
	}
	base := tcell.StyleDefault.Foreground(th.Fg).Background(bg)
	FillRect(s, Rect{X: x, Y: y, W: w, H: 1}, base)

	Text(s, x, y, a.Label, tcell.StyleDefault.Foreground(th.Muted).Background(bg))

	leftStyle := tcell.StyleDefault.Foreground(th.Accent).Background(bg)
	if a.Index == 0 {
		leftStyle = tcell.StyleDefault.Foreground(th.Muted).Background(bg)
	}
	rightStyle := tcell.StyleDefault.Foreground(th.Accent).Background(bg)
	if a.Index == len(a.Options)-1 {
		rightStyle = tcell.StyleDefault.Foreground(th.Muted).Background(bg)
	}

	valueW := w - len(a.Label) - 6
	if valueW < 4 {
		valueW = 4
	}
	vx := x + len(a.Label) + 2
	s.SetContent(vx, y, '◀', nil, leftStyle)
	TextCentered(s, vx+1, y, valueW, a.Selected(), base.Bold(focused))
	s.SetContent(vx+1+valueW, y, '▶', nil, rightStyle)
}
