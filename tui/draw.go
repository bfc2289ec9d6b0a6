package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Rect is a cell-space rectangle.
type Rect struct {
	X, Y, W, H int
}

// Text draws a string starting at (x, y).
func Text(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

// TextCentered draws a string centered within width w at (x, y).
func TextCentered(s tcell.Screen, x, y, w int, text string, style tcell.Style) {
	tw := runewidth.StringWidth(text)
	if tw > w {
		text = runewidth.Truncate(text, w, "…")
		tw = runewidth.StringWidth(text)
	}
	Text(s, x+(w-tw)/2, y, text, style)
}

// FillRect paints a rectangle with spaces.
func FillRect(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Box draws a single-line border around r with an optional title.
func Box(s tcell.Screen, r Rect, title string, style, titleStyle tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	for x := r.X + 1; x < r.X+r.W-1; x++ {
		s.SetContent(x, r.Y, '─', nil, style)
		s.SetContent(x, r.Y+r.H-1, '─', nil, style)
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		s.SetContent(r.X, y, '│', nil, style)
		s.SetContent(r.X+r.W-1, y, '│', nil, style)
	}
	s.SetContent(r.X, r.Y, '╭', nil, style)
	s.SetContent(r.X+r.W-1, r.Y, '╮', nil, style)
	s.SetContent(r.X, r.Y+r.H-1, '╰', nil, style)
	s.SetContent(r.X+r.W-1, r.Y+r.H-1, '╯', nil, style)

	if title != "" {
		label := " " + title + " "
		if runewidth.StringWidth(label) <= r.W-4 {
			Text(s, r.X+2, r.Y, label, titleStyle)
		}
	}
}
