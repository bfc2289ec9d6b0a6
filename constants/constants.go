// Package constants centralizes layout and gameplay tuning values.
package constants

import "time"

// Sprite image sizes in pixels. Terminal cells pack 2x2 pixels each, so a
// 64px sprite occupies a 32x32 cell block.
const (
	PreviewImageSize = 64
	GalleryImageSize = 28
	GameSpriteSize   = 32
)

// Designer layout.
const (
	PanelWidth      = 42
	PanelHeight     = 4
	PanelSpacing    = 1
	SelectorOptions = 3
)

// Timing.
const (
	FrameInterval        = 33 * time.Millisecond // ~30 fps
	ConfirmationDuration = 2 * time.Second
	GalleryPageInterval  = 60 * time.Second
	ScoreboardInterval   = 30 * time.Second
	StorePollInterval    = 5 * time.Second
	GlowPulsePeriod      = 1200 * time.Millisecond
)

// Gameplay.
const (
	BaseScrollSpeed   = 14.0 // hazard rows per second before multipliers
	BasePlayerSpeed   = 22.0 // player columns per second before multipliers
	HazardSpawnChance = 0.22 // per spawn tick
	HazardSpawnTick   = 350 * time.Millisecond
	ScorePerSecond    = 10
	HitInvulnerable   = 1500 * time.Millisecond
)

// Gallery placement.
const (
	GalleryMargin      = 4  // cells kept clear at the edges
	GalleryTopMargin   = 6  // header rows
	GalleryMaxAttempts = 96 // placement tries before opening a new page
)

// Scoreboard.
const (
	ScoreboardRanksPerPage = 10
	ScoreboardPages        = 2
)
