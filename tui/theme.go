// Package tui provides the small widget kit the petri screens share:
// panels, selectors, buttons, and the confirmation banner, drawn directly
// onto a tcell screen.
package tui

import "github.com/gdamore/tcell/v2"

// Theme defines semantic colors for the widgets.
type Theme struct {
	Bg       tcell.Color
	Fg       tcell.Color
	Title    tcell.Color
	Border   tcell.Color
	Accent   tcell.Color
	FocusBg  tcell.Color
	Muted    tcell.Color
	Good     tcell.Color
	Warning  tcell.Color
	HeaderBg tcell.Color
}

// DefaultTheme provides reasonable defaults for a dark terminal.
var DefaultTheme = Theme{
	Bg:       tcell.NewRGBColor(18, 22, 28),
	Fg:       tcell.NewRGBColor(200, 205, 210),
	Title:    tcell.NewRGBColor(240, 240, 245),
	Border:   tcell.NewRGBColor(70, 90, 110),
	Accent:   tcell.NewRGBColor(90, 170, 220),
	FocusBg:  tcell.NewRGBColor(40, 55, 75),
	Muted:    tcell.NewRGBColor(110, 115, 125),
	Good:     tcell.NewRGBColor(90, 200, 110),
	Warning:  tcell.NewRGBColor(230, 120, 90),
	HeaderBg: tcell.NewRGBColor(35, 45, 60),
}

// Base returns the default foreground-on-background style.
func (t Theme) Base() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Fg).Background(t.Bg)
}
