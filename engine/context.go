// Package engine holds the shared state every screen needs: the terminal,
// the layout, the record store, and the audio engine.
package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/petri/audio"
	"github.com/lixenwraith/petri/biology"
	"github.com/lixenwraith/petri/biology/persistence"
	"github.com/lixenwraith/petri/tui"
)

// Loadout is the organism build carried from the designer into a run.
type Loadout struct {
	Shape    *biology.Circuit
	Surface  *biology.Circuit
	Color    *biology.Circuit
	Gameplay map[biology.Category]*biology.Circuit
}

// DefaultLoadout builds the all-defaults organism used when the game starts
// without passing through the designer.
func DefaultLoadout() (*Loadout, error) {
	visual := map[biology.Category]*biology.Circuit{}
	specs := []struct {
		category biology.Category
		strength string
		value    string
	}{
		{biology.CategoryShape, string(biology.StrengthMedium), string(biology.ShapeRod)},
		{biology.CategorySurface, string(biology.StrengthMedium), string(biology.SurfaceSmooth)},
		{biology.CategoryColor, string(biology.StrengthStrong), string(biology.ColorGreen)},
	}
	for _, spec := range specs {
		c, err := biology.CircuitFromRecord(biology.CircuitRecord{
			PromoterStrength: spec.strength,
			CircuitType:      string(spec.category),
			Shape:            pickIf(spec.category == biology.CategoryShape, spec.value),
			Surface:          pickIf(spec.category == biology.CategorySurface, spec.value),
			ColorName:        pickIf(spec.category == biology.CategoryColor, spec.value),
		})
		if err != nil {
			return nil, err
		}
		visual[spec.category] = c
	}
	gameplay, err := biology.NewStrengthAssignment().Circuits()
	if err != nil {
		return nil, err
	}
	return &Loadout{
		Shape:    visual[biology.CategoryShape],
		Surface:  visual[biology.CategorySurface],
		Color:    visual[biology.CategoryColor],
		Gameplay: gameplay,
	}, nil
}

func pickIf(cond bool, v string) string {
	if cond {
		return v
	}
	return ""
}

// Express runs every circuit in the loadout against a fresh organism and
// returns it.
func (l *Loadout) Express() *biology.Bacteria {
	b := biology.NewBacteria()
	for _, c := range []*biology.Circuit{l.Shape, l.Surface, l.Color} {
		if c != nil {
			c.Express(b)
		}
	}
	return b
}

// GameplayRecords flattens the gameplay circuits for score persistence.
func (l *Loadout) GameplayRecords() persistence.GameplayCircuits {
	rec := func(c biology.Category) biology.CircuitRecord {
		if circuit, ok := l.Gameplay[c]; ok {
			return circuit.ToRecord()
		}
		return biology.CircuitRecord{}
	}
	return persistence.GameplayCircuits{
		Life:  rec(biology.CategoryLife),
		Speed: rec(biology.CategorySpeed),
		Small: rec(biology.CategorySmall),
	}
}

// VisualRecords flattens the visual circuits for score persistence.
func (l *Loadout) VisualRecords() persistence.VisualCircuits {
	rec := func(c *biology.Circuit) biology.CircuitRecord {
		if c != nil {
			return c.ToRecord()
		}
		return biology.CircuitRecord{}
	}
	return persistence.VisualCircuits{
		Shape:   rec(l.Shape),
		Surface: rec(l.Surface),
		Color:   rec(l.Color),
	}
}

// Layout carries the current canvas dimensions. It is passed explicitly to
// whatever needs them; no drawing code reads global window state.
type Layout struct {
	W, H int
}

// CenterX returns the x origin that centers a block of width w.
func (l Layout) CenterX(w int) int {
	x := (l.W - w) / 2
	if x < 0 {
		x = 0
	}
	return x
}

// GameContext is the dependency bundle handed to each mode.
type GameContext struct {
	Screen     tcell.Screen
	Layout     Layout
	Theme      tui.Theme
	Store      *persistence.Store
	Audio      *audio.Engine
	PlayerName string

	// Loadout is set by the designer before a run; nil means defaults.
	Loadout *Loadout

	start time.Time
}

// NewGameContext wires the context; layout is taken from the screen.
func NewGameContext(screen tcell.Screen, store *persistence.Store, audioEngine *audio.Engine, playerName string) *GameContext {
	w, h := screen.Size()
	return &GameContext{
		Screen:     screen,
		Layout:     Layout{W: w, H: h},
		Theme:      tui.DefaultTheme,
		Store:      store,
		Audio:      audioEngine,
		PlayerName: playerName,
		start:      time.Now(),
	}
}

// Resize updates the layout after a terminal resize event.
func (c *GameContext) Resize(w, h int) {
	c.Layout = Layout{W: w, H: h}
}

// Elapsed returns time since startup, the clock behind the polled visual
// effects.
func (c *GameContext) Elapsed() time.Duration {
	return time.Since(c.start)
}
