package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/petri/audio"
	"github.com/lixenwraith/petri/biology/persistence"
	"github.com/lixenwraith/petri/constants"
	"github.com/lixenwraith/petri/engine"
	"github.com/lixenwraith/petri/modes"
)

var (
	modeFlag  = flag.String("mode", modes.NameDesigner, "Start screen: designer, gallery, scoreboard")
	nameFlag  = flag.String("name", "anonymous", "Player name recorded on the scoreboard")
	dataFlag  = flag.String("data", "", "Data directory (default: XDG data dir)")
	debugFlag = flag.Bool("debug", false, "Write debug logs to logs/petri.log")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
	colorFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	// tcell reads these before probing terminfo.
	switch *colorFlag {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise it lands on the alternate screen and vanishes.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\npetri crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	dataDir := *dataFlag
	if dataDir == "" {
		dataDir = persistence.DefaultDir()
	}
	store, err := persistence.NewStore(dataDir)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to open data directory %s: %v\n", dataDir, err)
		os.Exit(1)
	}

	var audioEngine *audio.Engine
	if !*muteFlag {
		if audioEngine, err = audio.NewEngine(); err != nil {
			// Non-fatal, the game runs silent.
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
			audioEngine = nil
		} else {
			defer audioEngine.Close()
		}
	}

	ctx := engine.NewGameContext(screen, store, audioEngine, *nameFlag)
	if err := run(ctx, *modeFlag); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "petri: %v\n", err)
		os.Exit(1)
	}
}

// run drives the frame loop: poll events, tick the active mode, draw, and
// follow mode transitions until one requests quit.
func run(ctx *engine.GameContext, startMode string) error {
	current, err := newMode(ctx, startMode, time.Now())
	if err != nil {
		return err
	}

	eventChan := make(chan tcell.Event, 64)
	quitChan := make(chan struct{})
	go ctx.Screen.ChannelEvents(eventChan, quitChan)
	defer close(quitChan)

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if resize, isResize := ev.(*tcell.EventResize); isResize {
				w, h := resize.Size()
				ctx.Resize(w, h)
				ctx.Screen.Sync()
			}
			if key, isKey := ev.(*tcell.EventKey); isKey && key.Key() == tcell.KeyCtrlC {
				return nil
			}
			current.HandleEvent(ev)

		case now := <-ticker.C:
			current.Update(now)
			current.Draw(now)
			ctx.Screen.Show()

			switch next := current.Next(); next {
			case "":
			case modes.NameQuit:
				return nil
			default:
				current, err = newMode(ctx, next, now)
				if err != nil {
					return err
				}
				ctx.Screen.Clear()
			}
		}
	}
}

func newMode(ctx *engine.GameContext, name string, now time.Time) (modes.Mode, error) {
	switch name {
	case modes.NameDesigner:
		return modes.NewDesigner(ctx), nil
	case modes.NameGame:
		return modes.NewGame(ctx, now)
	case modes.NameGallery:
		return modes.NewGallery(ctx, now), nil
	case modes.NameScoreboard:
		return modes.NewScoreboard(ctx, now), nil
	}
	return nil, fmt.Errorf("unknown mode %q", name)
}
