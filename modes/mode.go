// Package modes implements the four full-screen states: the circuit
// designer, the shooter, the plate gallery, and the scoreboard.
package modes

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Mode names used for transitions.
const (
	NameDesigner   = "designer"
	NameGame       = "game"
	NameGallery    = "gallery"
	NameScoreboard = "scoreboard"
	NameQuit       = "quit"
)

// Mode is one full-screen state. The main loop forwards events, calls
// Update once per frame tick, then Draw. Next reports a pending transition
// and clears it.
type Mode interface {
	Name() string
	HandleEvent(ev tcell.Event)
	Update(now time.Time)
	Draw(now time.Time)
	Next() string
}
