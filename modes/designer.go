package modes

import (
	"fmt"
	"image"
	"log"
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

var strengthOptions = []string{
	string(biology.StrengthWeak),
	string(biology.StrengthMedium),
	string(biology.StrengthStrong),
}

// circuitPanel pairs the two selectors that define one visual circuit.
type circuitPanel struct {
	category biology.Category
	promoter *tui.ArrowSelector
	trait    *tui.ArrowSelector
}

func (p *circuitPanel) circuit() (*biology.Circuit, error) {
	promoter, err := biology.NewPromoter(p.promoter.Selected())
	if err != nil {
		return nil, err
	}
	var cds biology.CodingSequence
	switch p.category {
	case biology.CategoryShape:
		cds, err = biology.NewShapeCDS(p.trait.Selected())
	case biology.CategorySurface:
		cds, err = biology.NewSurfaceCDS(p.trait.Selected())
	case biology.CategoryColor:
		cds, err = biology.NewColorCDS(p.trait.Selected())
	}
	if err != nil {
		return nil, err
	}
	return biology.NewCircuit(promoter, cds, p.category)
}

// Designer is the circuit assembly screen: three visual circuit panels, the
// gameplay strength assignment, and a live phenotype preview.
type Designer struct {
	ctx *engine.GameContext

	panels     [3]*circuitPanel
	assignment *biology.StrengthAssignment
	focus      int

	preview *image.RGBA
	stale   bool
	banner  tui.ConfirmationBanner

	next string
}

// Focus slots: two selectors per panel, three gameplay rows, two buttons.
const (
	focusGameplayFirst = 6
	focusBuild         = 9
	focusPlay          = 10
	focusCount         = 11
)

// NewDesigner starts from the default organism: medium rod, medium smooth,
// strong green.
func NewDesigner(ctx *engine.GameContext) *Designer {
	d := &Designer{
		ctx:        ctx,
		assignment: biology.NewStrengthAssignment(),
		stale:      true,
	}
	d.panels[0] = &circuitPanel{
		category: biology.CategoryShape,
		promoter: tui.NewArrowSelector("Promoter", strengthOptions, 1),
		trait: tui.NewArrowSelector("Shape CDS", []string{
			string(biology.ShapeRod), string(biology.ShapeSpherical),
		}, 0),
	}
	d.panels[1] = &circuitPanel{
		category: biology.CategorySurface,
		promoter: tui.NewArrowSelector("Promoter", strengthOptions, 1),
		trait: tui.NewArrowSelector("Surface CDS", []string{
			string(biology.SurfaceSmooth), string(biology.SurfaceRough), string(biology.SurfaceSpiky),
		}, 0),
	}
	d.panels[2] = &circuitPanel{
		category: biology.CategoryColor,
		promoter: tui.NewArrowSelector("Promoter", strengthOptions, 2),
		trait: tui.NewArrowSelector("Color CDS", []string{
			string(biology.ColorGreen), string(biology.ColorCyan), string(biology.ColorYellow),
			string(biology.ColorRed), string(biology.ColorBlue),
		}, 0),
	}
	return d
}

func (d *Designer) Name() string { return NameDesigner }

// Next reports and clears the pending transition.
func (d *Designer) Next() string {
	n := d.next
	d.next = ""
	return n
}

func (d *Designer) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyEscape:
		d.next = NameQuit
	case tcell.KeyTab, tcell.KeyDown:
		d.focus = (d.focus + 1) % focusCount
	case tcell.KeyBacktab, tcell.KeyUp:
		d.focus = (d.focus + focusCount - 1) % focusCount
	case tcell.KeyLeft:
		d.adjust(-1)
	case tcell.KeyRight:
		d.adjust(+1)
	case tcell.KeyEnter:
		d.activate()
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			d.next = NameQuit
		case 'p':
			d.startRun()
		case 'g':
			d.next = NameGallery
		case 's':
			d.next = NameScoreboard
		case 'b':
			d.build()
		}
	}
}

// adjust moves the focused selector or cycles a gameplay strength.
func (d *Designer) adjust(dir int) {
	changed := false
	switch {
	case d.focus < focusGameplayFirst:
		sel := d.focusedSelector()
		if dir < 0 {
			changed = sel.Prev()
		} else {
			changed = sel.Next()
		}
	case d.focus < focusBuild:
		gene := biology.GameplayCategories[d.focus-focusGameplayFirst]
		changed = d.cycleStrength(gene, dir)
	}
	if changed {
		d.stale = true
		d.ctx.Audio.Play(audio.CueSelect)
	}
}

func (d *Designer) focusedSelector() *tui.ArrowSelector {
	panel := d.panels[d.focus/2]
	if d.focus%2 == 0 {
		return panel.promoter
	}
	return panel.trait
}

// cycleStrength steps the gene's strength through the ordered list. The
// assignment swap keeps the strength-to-gene mapping a bijection.
func (d *Designer) cycleStrength(gene biology.Category, dir int) bool {
	current := d.assignment.StrengthOf(gene)
	idx := 0
	for i, s := range strengthOptions {
		if s == string(current) {
			idx = i
		}
	}
	idx = (idx + dir + len(strengthOptions)) % len(strengthOptions)
	return d.assignment.Assign(gene, biology.Strength(strengthOptions[idx]))
}

func (d *Designer) activate() {
	switch d.focus {
	case focusBuild:
		d.build()
	case focusPlay:
		d.startRun()
	}
}

// build saves the current visual circuits as a new organism record.
func (d *Designer) build() {
	shape, surface, colorC, err := d.circuits()
	if err != nil {
		log.Printf("designer: build rejected: %v", err)
		return
	}
	rec := persistence.NewOrganismRecord(shape, surface, colorC, time.Now())
	if err := d.ctx.Store.AppendOrganism(rec); err != nil {
		log.Printf("designer: save organism: %v", err)
		return
	}
	d.banner.Show("Organism built and plated!", time.Now())
	d.ctx.Audio.Play(audio.CueBuild)
}

// startRun freezes the current build into the context loadout and hands off
// to the shooter.
func (d *Designer) startRun() {
	loadout, err := d.loadout()
	if err != nil {
		log.Printf("designer: start run rejected: %v", err)
		return
	}
	d.ctx.Loadout = loadout
	d.next = NameGame
}

func (d *Designer) circuits() (shape, surface, colorC *biology.Circuit, err error) {
	if shape, err = d.panels[0].circuit(); err != nil {
		return nil, nil, nil, err
	}
	if surface, err = d.panels[1].circuit(); err != nil {
		return nil, nil, nil, err
	}
	if colorC, err = d.panels[2].circuit(); err != nil {
		return nil, nil, nil, err
	}
	return shape, surface, colorC, nil
}

func (d *Designer) loadout() (*engine.Loadout, error) {
	shape, surface, colorC, err := d.circuits()
	if err != nil {
		return nil, err
	}
	gameplay, err := d.assignment.Circuits()
	if err != nil {
		return nil, err
	}
	return &engine.Loadout{
		Shape:    shape,
		Surface:  surface,
		Color:    colorC,
		Gameplay: gameplay,
	}, nil
}

func (d *Designer) Update(now time.Time) {
	d.banner.Update(now)
	if !d.stale {
		return
	}
	shape, surface, colorC, err := d.circuits()
	if err != nil {
		// Selector options are all valid parts, so this only fires on a
		// programming error.
		log.Printf("designer: preview: %v", err)
		d.stale = false
		return
	}
	b := biology.NewBacteria()
	shape.Express(b)
	surface.Express(b)
	colorC.Express(b)
	d.preview = phenotype.Render(b.GetVisualProperties(), constants.PreviewImageSize, phenotype.PresetPreview)
	d.stale = false
}

func (d *Designer) Draw(now time.Time) {
	s := d.ctx.Screen
	th := d.ctx.Theme
	layout := d.ctx.Layout

	tui.FillRect(s, tui.Rect{X: 0, Y: 0, W: layout.W, H: layout.H}, th.Base())
	tui.TextCentered(s, 0, 1, layout.W, "PETRI  —  BUILD-A-BACTERIA",
		th.Base().Foreground(th.Title).Bold(true))

	left := 3
	y := 3
	for i, panel := range d.panels {
		title := fmt.Sprintf(" %s circuit ", panel.category)
		box := tui.Rect{X: left, Y: y, W: constants.PanelWidth, H: constants.PanelHeight}
		tui.Box(s, box, title, th.Base().Foreground(th.Border), th.Base().Foreground(th.Accent))
		panel.promoter.Draw(s, left+2, y+1, constants.PanelWidth-4, d.focus == i*2, th)
		panel.trait.Draw(s, left+2, y+2, constants.PanelWidth-4, d.focus == i*2+1, th)
		y += constants.PanelHeight + constants.PanelSpacing
	}

	d.drawGameplay(s, th, left, y)
	d.drawButtons(s, th, left, y+6)
	d.drawPreview(s, th, now)

	hint := "tab/↑↓ focus   ←→ change   b build   p play   g gallery   s scores   q quit"
	tui.TextCentered(s, 0, layout.H-1, layout.W, hint, th.Base().Foreground(th.Muted))

	d.banner.Draw(s, layout.W, layout.H, th)
}

func (d *Designer) drawGameplay(s tcell.Screen, th tui.Theme, x, y int) {
	box := tui.Rect{X: x, Y: y, W: constants.PanelWidth, H: 5}
	tui.Box(s, box, " gameplay genes ", th.Base().Foreground(th.Border), th.Base().Foreground(th.Accent))
	for i, gene := range biology.GameplayCategories {
		strength := d.assignment.StrengthOf(gene)
		level := biology.Promoter{Strength: strength}.ExpressionLevel()
		row := fmt.Sprintf("%-6s ◀ %-6s ▶  %s", gene, strength, geneEffect(gene, level))
		style := th.Base()
		if d.focus == focusGameplayFirst+i {
			style = style.Background(th.FocusBg).Bold(true)
		}
		tui.Text(s, x+2, y+1+i, row, style)
	}
}

// geneEffect summarizes what the gene does at the given expression level.
func geneEffect(gene biology.Category, level float64) string {
	switch gene {
	case biology.CategoryLife:
		return fmt.Sprintf("%d lives", biology.Lives(level))
	case biology.CategorySpeed:
		return fmt.Sprintf("%.0f%% speed", biology.SpeedMultiplier(level)*100)
	case biology.CategorySmall:
		return fmt.Sprintf("%.0f%% size", biology.SizeMultiplier(level)*100)
	}
	return ""
}

func (d *Designer) drawButtons(s tcell.Screen, th tui.Theme, x, y int) {
	tui.Button{Label: "Build Organism"}.Draw(s, x, y, 20, d.focus == focusBuild, th)
	tui.Button{Label: "Play"}.Draw(s, x+22, y, 10, d.focus == focusPlay, th)
}

func (d *Designer) drawPreview(s tcell.Screen, th tui.Theme, now time.Time) {
	if d.preview == nil {
		return
	}
	cellW, cellH := render.SpriteCellSize(d.preview)
	x := d.ctx.Layout.W - cellW - 8
	if x < constants.PanelWidth+6 {
		x = constants.PanelWidth + 6
	}
	y := 4
	box := tui.Rect{X: x - 2, Y: y - 1, W: cellW + 4, H: cellH + 2}

	// The border pulses to signal the preview tracks live edits.
	pulse := render.PulseLevel(d.ctx.Elapsed(), constants.GlowPulsePeriod)
	borderStyle := th.Base().Foreground(lerpColor(th.Border, th.Accent, pulse))
	tui.Box(s, box, " preview ", borderStyle, th.Base().Foreground(th.Accent))
	render.BlitSprite(s, d.preview, x, y, th.Bg)
}

// lerpColor interpolates between two RGB colors.
func lerpColor(a, b tcell.Color, t float64) tcell.Color {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 { return x + int32(float64(y-x)*t) }
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
