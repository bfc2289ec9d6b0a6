package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/petri/constants"
)

// ConfirmationBanner shows a transient message near the bottom of the
// screen. It is driven by polling: Update is an idempotent no-op whenever
// the deadline has not passed, so calling it off-schedule is safe.
type ConfirmationBanner struct {
	message string
	shownAt time.Time
	active  bool
}

// Show activates the banner with the given message.
func (b *ConfirmationBanner) Show(message string, now time.Time) {
	b.message = message
	b.shownAt = now
	b.active = true
}

// Update deactivates the banner once its duration has elapsed.
func (b *ConfirmationBanner) Update(now time.Time) {
	if b.active && now.Sub(b.shownAt) > constants.ConfirmationDuration {
		b.active = false
	}
}

// Active reports whether the banner is currently visible.
func (b *ConfirmationBanner) Active() bool {
	return b.active
}

// Draw renders the banner centered horizontally near the screen bottom.
func (b *ConfirmationBanner) Draw(s tcell.Screen, screenW, screenH int, th Theme) {
	if !b.active {
		return
	}
	w := len(b.message) + 6
	x := (screenW - w) / 2
	y := screenH - 4
	style := tcell.StyleDefault.Foreground(th.Good).Background(th.HeaderBg)

	FillRect(s, Rect{X: x, Y: y, W: w, H: 3}, style)
	Box(s, Rect{X: x, Y: y, W: w, H: 3}, "", style, style)
	TextCentered(s, x, y+1, w, b.message, style.Bold(true))
}
