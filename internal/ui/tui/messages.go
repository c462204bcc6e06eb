package tui

import "time"

// tickMsg drives the board-state refresh while the play screen is active.
type tickMsg time.Time
