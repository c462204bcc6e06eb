package ports

import (
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

// ToneDriver emits square waves on a tone-capable pin.
//
// Tone starts the wave and returns immediately; the caller paces itself with
// the clock. A new Tone call replaces any wave still sounding. NoTone is
// idempotent: silencing an already-silent pin is a no-op.
type ToneDriver interface {
	Tone(pin domain.Pin, freqHz uint16, d time.Duration)
	NoTone(pin domain.Pin)
}
