package modes

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/petri/biology"
	"github.com/lixenwraith/petri/biology/persistence"
	"github.com/lixenwraith/petri/constants"
	"github.com/lixenwraith/petri/engine"
	"github.com/lixenwraith/petri/phenotype"
	"github.com/lixenwraith/petri/render"
	"github.com/lixenwraith/petri/tui"
)

// plateSprite is one rendered organism placed on a gallery page.
type plateSprite struct {
	img  *image.RGBA
	rect tui.Rect
}

// Gallery is the shared plate view: every saved organism rendered at full
// detail, scattered across pages that cycle automatically. The store is
// polled so builds from other sessions show up without restarting.
type Gallery struct {
	ctx *engine.GameContext

	pages   [][]plateSprite
	page    int
	total   int
	skipped int

	pageStart time.Time
	lastPoll  time.Time
	watcher   *persistence.Watcher
	rng       *rand.Rand

	next string
}

func NewGallery(ctx *engine.GameContext, now time.Time) *Gallery {
	g := &Gallery{
		ctx:       ctx,
		pageStart: now,
		lastPoll:  now,
		watcher:   persistence.NewWatcher(ctx.Store.OrganismPath()),
	}
	g.reload()
	return g
}

// placementSeed fixes the layout: the same record order always produces the
// same scatter, so a reload only moves sprites when organisms were added.
const placementSeed = 0x9e3779b9

func (g *Gallery) Name() string { return NameGallery }

func (g *Gallery) Next() string {
	n := g.next
	g.next = ""
	return n
}

func (g *Gallery) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyEscape:
		g.next = NameDesigner
	case tcell.KeyLeft:
		g.turnPage(-1)
	case tcell.KeyRight:
		g.turnPage(+1)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			g.next = NameDesigner
		case ' ':
			g.turnPage(+1)
		}
	}
}

func (g *Gallery) turnPage(dir int) {
	if len(g.pages) == 0 {
		return
	}
	g.page = (g.page + dir + len(g.pages)) % len(g.pages)
	g.pageStart = time.Now()
}

func (g *Gallery) Update(now time.Time) {
	if now.Sub(g.lastPoll) >= constants.StorePollInterval {
		g.lastPoll = now
		if g.watcher.Changed() {
			g.reload()
		}
	}
	if len(g.pages) > 1 && now.Sub(g.pageStart) >= constants.GalleryPageInterval {
		g.turnPage(+1)
	}
}

// reload re-reads the store and lays every organism out again. Corrupt
// records are skipped and counted rather than aborting the whole plate.
func (g *Gallery) reload() {
	records, err := g.ctx.Store.LoadOrganisms()
	if err != nil {
		log.Printf("gallery: load organisms: %v", err)
		return
	}

	g.pages = nil
	g.total = 0
	g.skipped = 0
	g.rng = rand.New(rand.NewSource(placementSeed))
	for _, rec := range records {
		shape, surface, colorC, err := rec.Circuits()
		if err != nil {
			log.Printf("gallery: skipping organism %s: %v", rec.ID, err)
			g.skipped++
			continue
		}
		b := biology.NewBacteria()
		shape.Express(b)
		surface.Express(b)
		colorC.Express(b)
		img := phenotype.Render(b.GetVisualProperties(), constants.GalleryImageSize, phenotype.PresetGallery)
		g.place(img)
		g.total++
	}
	if g.page >= len(g.pages) {
		g.page = 0
	}
}

// place drops the sprite onto the last page, opening a new page when no
// free spot is found.
func (g *Gallery) place(img *image.RGBA) {
	w, h := render.SpriteCellSize(img)
	bounds := plateBounds(g.ctx.Layout)
	if len(g.pages) == 0 {
		g.pages = append(g.pages, nil)
	}
	pageIdx := len(g.pages) - 1
	rect, ok := findSpot(g.pages[pageIdx], w, h, bounds, g.rng)
	if !ok {
		g.pages = append(g.pages, nil)
		pageIdx++
		rect, ok = findSpot(nil, w, h, bounds, g.rng)
		if !ok {
			// Terminal too small for even one sprite; pin to the corner.
			rect = tui.Rect{X: bounds.X, Y: bounds.Y, W: w, H: h}
		}
	}
	g.pages[pageIdx] = append(g.pages[pageIdx], plateSprite{img: img, rect: rect})
}

// plateBounds is the placeable region: inside the margins, below the header.
func plateBounds(layout engine.Layout) tui.Rect {
	return tui.Rect{
		X: constants.GalleryMargin,
		Y: constants.GalleryTopMargin,
		W: layout.W - 2*constants.GalleryMargin,
		H: layout.H - constants.GalleryTopMargin - 2,
	}
}

// findSpot tries random positions inside bounds until the sprite does not
// overlap anything already placed. A one-cell gap keeps neighbors separated.
func findSpot(placed []plateSprite, w, h int, bounds tui.Rect, rng *rand.Rand) (tui.Rect, bool) {
	maxX := bounds.W - w
	maxY := bounds.H - h
	if maxX < 0 || maxY < 0 {
		return tui.Rect{}, false
	}
	for attempt := 0; attempt < constants.GalleryMaxAttempts; attempt++ {
		r := tui.Rect{
			X: bounds.X + rng.Intn(maxX+1),
			Y: bounds.Y + rng.Intn(maxY+1),
			W: w,
			H: h,
		}
		if !overlapsAny(placed, r) {
			return r, true
		}
	}
	return tui.Rect{}, false
}

func overlapsAny(placed []plateSprite, r tui.Rect) bool {
	for _, p := range placed {
		if rectsOverlap(p.rect, r, 1) {
			return true
		}
	}
	return false
}

func rectsOverlap(a, b tui.Rect, gap int) bool {
	return a.X < b.X+b.W+gap && b.X < a.X+a.W+gap &&
		a.Y < b.Y+b.H+gap && b.Y < a.Y+a.H+gap
}

func (g *Gallery) Draw(now time.Time) {
	s := g.ctx.Screen
	th := g.ctx.Theme
	layout := g.ctx.Layout

	tui.FillRect(s, tui.Rect{X: 0, Y: 0, W: layout.W, H: layout.H}, th.Base())
	tui.TextCentered(s, 0, 1, layout.W, "COMMUNITY PLATE",
		th.Base().Foreground(th.Title).Bold(true))

	header := fmt.Sprintf("%d organisms on the plate", g.total)
	if g.skipped > 0 {
		header += fmt.Sprintf("  (%d unreadable)", g.skipped)
	}
	tui.TextCentered(s, 0, 3, layout.W, header, th.Base().Foreground(th.Muted))

	if len(g.pages) > 0 {
		for _, sp := range g.pages[g.page] {
			render.BlitSprite(s, sp.img, sp.rect.X, sp.rect.Y, th.Bg)
		}
	}

	if len(g.pages) > 1 {
		indicator := fmt.Sprintf("page %d/%d", g.page+1, len(g.pages))
		tui.TextCentered(s, 0, layout.H-2, layout.W, indicator, th.Base().Foreground(th.Accent))
	}
	tui.TextCentered(s, 0, layout.H-1, layout.W, "←→ page   esc back",
		th.Base().Foreground(th.Muted))
}
