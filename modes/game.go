package modes

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/petri/audio"
	"github.com/lixenwraith/petri/biology"
	"github.com/lixenwraith/petri/biology/persistence"
	"github.com/lixenwraith/petri/constants"
	"github.com/lixenwraith/petri/engine"
	"github.com/lixenwraith/petri/phenotype"
	"github.com/lixenwraith/petri/render"
	"github.com/lixenwraith/petri/tui"
)

// hazard is one falling obstacle, tracked in cell coordinates with a
// fractional row for smooth scrolling.
type hazard struct {
	x     int
	y     float64
	w     int
	speed float64
}

// Game is the dodge-the-hazards run. The designed organism decides the
// player's sprite, hit points, movement speed, and footprint.
type Game struct {
	ctx     *engine.GameContext
	loadout *engine.Loadout

	sprite           *image.RGBA
	spriteW, spriteH int // cells
	speedMult        float64
	sizeMult         float64

	x           float64
	lives       int
	score       float64
	hazards     []hazard
	rng         *rand.Rand
	last        time.Time
	nextSpawn   time.Time
	invulnUntil time.Time

	over  bool
	saved bool
	next  string
}

// NewGame renders the loadout's phenotype into the player sprite and derives
// the run parameters from the gameplay circuits.
func NewGame(ctx *engine.GameContext, now time.Time) (*Game, error) {
	loadout := ctx.Loadout
	if loadout == nil {
		var err error
		if loadout, err = engine.DefaultLoadout(); err != nil {
			return nil, err
		}
	}

	level := func(c biology.Category) float64 {
		if circuit, ok := loadout.Gameplay[c]; ok {
			return circuit.ExpressionLevel()
		}
		return 0
	}
	sizeMult := biology.SizeMultiplier(level(biology.CategorySmall))

	b := loadout.Express()
	spriteSize := int(float64(constants.GameSpriteSize) * sizeMult)
	if spriteSize < 4 {
		spriteSize = 4
	}
	sprite := phenotype.Render(b.GetVisualProperties(), spriteSize, phenotype.PresetPreview)
	cellW, cellH := render.SpriteCellSize(sprite)

	g := &Game{
		ctx:       ctx,
		loadout:   loadout,
		sprite:    sprite,
		spriteW:   cellW,
		spriteH:   cellH,
		speedMult: biology.SpeedMultiplier(level(biology.CategorySpeed)),
		sizeMult:  sizeMult,
		lives:     biology.Lives(level(biology.CategoryLife)),
		x:         float64(ctx.Layout.CenterX(cellW)),
		rng:       rand.New(rand.NewSource(now.UnixNano())),
		last:      now,
		nextSpawn: now.Add(constants.HazardSpawnTick),
	}
	return g, nil
}

func (g *Game) Name() string { return NameGame }

func (g *Game) Next() string {
	n := g.next
	g.next = ""
	return n
}

func (g *Game) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	if g.over {
		switch key.Key() {
		case tcell.KeyEnter, tcell.KeyEscape:
			g.next = NameDesigner
		}
		return
	}
	// Terminal input has no key-release events, so movement is impulse
	// based: each press nudges the player by a speed-scaled step.
	step := 2.0 * g.speedMult
	switch key.Key() {
	case tcell.KeyLeft:
		g.x -= step
	case tcell.KeyRight:
		g.x += step
	case tcell.KeyEscape:
		g.next = NameDesigner
	case tcell.KeyRune:
		switch key.Rune() {
		case 'a', 'h':
			g.x -= step
		case 'd', 'l':
			g.x += step
		case 'q':
			g.next = NameDesigner
		}
	}
	g.clampPlayer()
}

func (g *Game) clampPlayer() {
	max := float64(g.ctx.Layout.W - g.spriteW)
	if g.x < 0 {
		g.x = 0
	}
	if g.x > max {
		g.x = max
	}
}

func (g *Game) playerY() int {
	return g.ctx.Layout.H - g.spriteH - 1
}

func (g *Game) Update(now time.Time) {
	dt := now.Sub(g.last).Seconds()
	g.last = now
	if g.over || dt <= 0 {
		return
	}

	g.score += constants.ScorePerSecond * dt
	g.clampPlayer()

	// Hazards fall faster as the run goes on.
	ramp := 1.0 + g.score/500.0
	kept := g.hazards[:0]
	for _, h := range g.hazards {
		h.y += h.speed * ramp * dt
		if int(h.y) <= g.ctx.Layout.H {
			kept = append(kept, h)
		}
	}
	g.hazards = kept

	if now.After(g.nextSpawn) {
		g.nextSpawn = now.Add(constants.HazardSpawnTick)
		if g.rng.Float64() < constants.HazardSpawnChance {
			w := 2 + g.rng.Intn(4)
			g.hazards = append(g.hazards, hazard{
				x:     g.rng.Intn(maxInt(1, g.ctx.Layout.W-w)),
				y:     1, // below the HUD row
				w:     w,
				speed: constants.BaseScrollSpeed * (0.8 + 0.4*g.rng.Float64()),
			})
		}
	}

	g.checkCollisions(now)
}

func (g *Game) checkCollisions(now time.Time) {
	if now.Before(g.invulnUntil) {
		return
	}
	py := g.playerY()
	px := int(g.x)
	for i, h := range g.hazards {
		hy := int(h.y)
		if hy < py || hy >= py+g.spriteH {
			continue
		}
		if h.x+h.w <= px || h.x >= px+g.spriteW {
			continue
		}
		g.hazards = append(g.hazards[:i], g.hazards[i+1:]...)
		g.hit(now)
		return
	}
}

func (g *Game) hit(now time.Time) {
	g.lives--
	if g.lives <= 0 {
		g.gameOver()
		return
	}
	g.invulnUntil = now.Add(constants.HitInvulnerable)
	g.ctx.Audio.Play(audio.CueHit)
}

func (g *Game) gameOver() {
	g.over = true
	g.ctx.Audio.Play(audio.CueGameOver)
	if g.saved {
		return
	}
	g.saved = true
	rec := persistence.ScoreRecord{
		Name:             g.ctx.PlayerName,
		Score:            int(g.score),
		VisualCircuits:   g.loadout.VisualRecords(),
		GameplayCircuits: g.loadout.GameplayRecords(),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
	if err := g.ctx.Store.AppendScore(rec); err != nil {
		log.Printf("game: save score: %v", err)
	}
}

func (g *Game) Draw(now time.Time) {
	s := g.ctx.Screen
	th := g.ctx.Theme
	layout := g.ctx.Layout

	tui.FillRect(s, tui.Rect{X: 0, Y: 0, W: layout.W, H: layout.H}, th.Base())
	g.drawHUD(s, th, layout)

	hazardStyle := th.Base().Foreground(th.Warning)
	for _, h := range g.hazards {
		y := int(h.y)
		if y < 1 || y >= layout.H {
			continue
		}
		tui.Text(s, h.x, y, strings.Repeat("▓", h.w), hazardStyle)
	}

	// Blink during the post-hit grace period.
	if now.After(g.invulnUntil) || render.BlinkOn(g.ctx.Elapsed(), 200*time.Millisecond) {
		render.BlitSprite(s, g.sprite, int(g.x), g.playerY(), th.Bg)
	}

	if g.over {
		g.drawGameOver(s, th, layout)
	}
}

func (g *Game) drawHUD(s tcell.Screen, th tui.Theme, layout engine.Layout) {
	bar := th.Base().Background(th.HeaderBg)
	tui.FillRect(s, tui.Rect{X: 0, Y: 0, W: layout.W, H: 1}, bar)
	tui.Text(s, 1, 0, g.ctx.PlayerName, bar.Foreground(th.Title))
	tui.Text(s, 1+len(g.ctx.PlayerName)+2, 0, strings.Repeat("♥ ", g.lives), bar.Foreground(th.Warning))
	stats := fmt.Sprintf("speed %.0f%%  size %.0f%%  score %d",
		g.speedMult*100, g.sizeMult*100, int(g.score))
	tui.Text(s, layout.W-len(stats)-1, 0, stats, bar.Foreground(th.Accent))
}

func (g *Game) drawGameOver(s tcell.Screen, th tui.Theme, layout engine.Layout) {
	w, h := 36, 6
	box := tui.Rect{X: layout.CenterX(w), Y: (layout.H - h) / 2, W: w, H: h}
	tui.FillRect(s, box, th.Base())
	tui.Box(s, box, " lysed ", th.Base().Foreground(th.Warning), th.Base().Foreground(th.Warning))
	tui.TextCentered(s, box.X, box.Y+2, w, fmt.Sprintf("final score: %d", int(g.score)),
		th.Base().Foreground(th.Title).Bold(true))
	tui.TextCentered(s, box.X, box.Y+4, w, "enter: back to the lab", th.Base().Foreground(th.Muted))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
