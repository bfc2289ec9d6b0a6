package modes

import (
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/petri/biology"
	"github.com/lixenwraith/petri/biology/persistence"
	"github.com/lixenwraith/petri/constants"
	"github.com/lixenwraith/petri/engine"
	"github.com/lixenwraith/petri/tui"
)

// Scoreboard shows the leaderboard: the top runs in two alternating pages,
// refreshed from the shared store while on screen.
type Scoreboard struct {
	ctx *engine.GameContext

	scores []persistence.ScoreRecord
	page   int

	pageStart time.Time
	lastPoll  time.Time
	watcher   *persistence.Watcher

	next string
}

func NewScoreboard(ctx *engine.GameContext, now time.Time) *Scoreboard {
	sb := &Scoreboard{
		ctx:       ctx,
		pageStart: now,
		lastPoll:  now,
		watcher:   persistence.NewWatcher(ctx.Store.ScorePath()),
	}
	sb.reload()
	return sb
}

func (sb *Scoreboard) Name() string { return NameScoreboard }

func (sb *Scoreboard) Next() string {
	n := sb.next
	sb.next = ""
	return n
}

func (sb *Scoreboard) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyEscape:
		sb.next = NameDesigner
	case tcell.KeyLeft, tcell.KeyRight:
		sb.turnPage(time.Now())
	case tcell.KeyRune:
		if key.Rune() == 'q' {
			sb.next = NameDesigner
		}
	}
}

func (sb *Scoreboard) turnPage(now time.Time) {
	sb.page = (sb.page + 1) % constants.ScoreboardPages
	sb.pageStart = now
}

func (sb *Scoreboard) Update(now time.Time) {
	if now.Sub(sb.lastPoll) >= constants.StorePollInterval {
		sb.lastPoll = now
		if sb.watcher.Changed() {
			sb.reload()
		}
	}
	if now.Sub(sb.pageStart) >= constants.ScoreboardInterval {
		sb.turnPage(now)
	}
}

func (sb *Scoreboard) reload() {
	scores, err := sb.ctx.Store.LoadScores()
	if err != nil {
		log.Printf("scoreboard: load scores: %v", err)
		return
	}
	limit := constants.ScoreboardRanksPerPage * constants.ScoreboardPages
	if len(scores) > limit {
		scores = scores[:limit]
	}
	sb.scores = scores
}

// pageRange returns the half-open rank slice shown on the given page.
func pageRange(page, total int) (start, end int) {
	start = page * constants.ScoreboardRanksPerPage
	end = start + constants.ScoreboardRanksPerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end
}

// buildSummary condenses a run's gameplay circuits into the trait values
// they produced.
func buildSummary(gc persistence.GameplayCircuits) string {
	level := func(rec biology.CircuitRecord) float64 {
		p, err := biology.NewPromoter(rec.PromoterStrength)
		if err != nil {
			return 0
		}
		return p.ExpressionLevel()
	}
	return fmt.Sprintf("%d♥ %3.0f%%spd %3.0f%%sz",
		biology.Lives(level(gc.Life)),
		biology.SpeedMultiplier(level(gc.Speed))*100,
		biology.SizeMultiplier(level(gc.Small))*100)
}

func (sb *Scoreboard) Draw(now time.Time) {
	s := sb.ctx.Screen
	th := sb.ctx.Theme
	layout := sb.ctx.Layout

	tui.FillRect(s, tui.Rect{X: 0, Y: 0, W: layout.W, H: layout.H}, th.Base())
	tui.TextCentered(s, 0, 1, layout.W, "HALL OF STRAINS",
		th.Base().Foreground(th.Title).Bold(true))

	start, end := pageRange(sb.page, len(sb.scores))
	subtitle := fmt.Sprintf("ranks %d–%d", start+1, start+constants.ScoreboardRanksPerPage)
	tui.TextCentered(s, 0, 2, layout.W, subtitle, th.Base().Foreground(th.Muted))

	tableW := 68
	x := layout.CenterX(tableW)
	y := 4

	headerStyle := th.Base().Background(th.HeaderBg).Foreground(th.Accent).Bold(true)
	tui.FillRect(s, tui.Rect{X: x, Y: y, W: tableW, H: 1}, headerStyle)
	tui.Text(s, x+1, y, fmt.Sprintf("%-4s %-14s %8s  %-20s %s", "RANK", "NAME", "SCORE", "BUILD", "AGE"), headerStyle)
	y++

	for i := start; i < end; i++ {
		rec := sb.scores[i]
		style := th.Base()
		if (i-start)%2 == 1 {
			style = style.Background(th.HeaderBg)
		}
		age := "—"
		if when := rec.When(); !when.IsZero() {
			age = humanize.Time(when)
		}
		row := fmt.Sprintf("%-4d %-14.14s %8d  %-20s %s",
			i+1, rec.Name, rec.Score, buildSummary(rec.GameplayCircuits), age)
		tui.Text(s, x+1, y, row, style)
		y++
	}
	if len(sb.scores) == 0 {
		tui.TextCentered(s, 0, y+1, layout.W, "no runs recorded yet", th.Base().Foreground(th.Muted))
	}

	sb.drawIndicator(s, th, layout, now)
	tui.TextCentered(s, 0, layout.H-1, layout.W, "←→ page   esc back",
		th.Base().Foreground(th.Muted))
}

// drawIndicator shows which page is up and how long until it flips.
func (sb *Scoreboard) drawIndicator(s tcell.Screen, th tui.Theme, layout engine.Layout, now time.Time) {
	remaining := constants.ScoreboardInterval - now.Sub(sb.pageStart)
	if remaining < 0 {
		remaining = 0
	}
	dots := make([]rune, constants.ScoreboardPages)
	for i := range dots {
		if i == sb.page {
			dots[i] = '●'
		} else {
			dots[i] = '○'
		}
	}
	text := fmt.Sprintf("%s  next page in %ds", string(dots), int(remaining.Seconds())+1)
	tui.TextCentered(s, 0, layout.H-2, layout.W, text, th.Base().Foreground(th.Accent))
}
