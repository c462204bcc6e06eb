package firmware

import (
	"math/rand"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ports"
)

// Buzzer effect parameters. These are part of the sound's identity, not
// configuration.
const (
	rollToneMinHz = 500
	rollToneMaxHz = 1000
	rollToneSlice = 20 * time.Millisecond
	rollToneHold  = 20 * time.Millisecond

	stopToneHz   = 200
	stopToneLen  = 100 * time.Millisecond
	stopToneHold = 100 * time.Millisecond
)

// Sound plays the two buzzer effects. Both calls block the control loop for
// their full duration; only one tone is ever in flight.
type Sound struct {
	tone  ports.ToneDriver
	clock ports.Clock
	rng   *rand.Rand
	pin   domain.Pin
}

func NewSound(tone ports.ToneDriver, clock ports.Clock, rng *rand.Rand, pin domain.Pin) *Sound {
	return &Sound{tone: tone, clock: clock, rng: rng, pin: pin}
}

// PlayRollSound emits intensity randomized tone slices: each picks a pitch in
// [500,1000) Hz, sounds for 20ms, and holds 20ms before the next. The buzzer
// is silenced afterwards; intensity 0 silences immediately with no tone.
func (s *Sound) PlayRollSound(intensity int) {
	for i := 0; i < intensity; i++ {
		freq := uint16(s.rng.Intn(rollToneMaxHz-rollToneMinHz) + rollToneMinHz)
		s.tone.Tone(s.pin, freq, rollToneSlice)
		s.clock.Sleep(rollToneHold)
	}
	s.tone.NoTone(s.pin)
}

// PlayStopSound emits the single fixed low "settled" tone: 200 Hz for 100ms,
// holds 100ms, then silences the buzzer.
func (s *Sound) PlayStopSound() {
	s.tone.Tone(s.pin, stopToneHz, stopToneLen)
	s.clock.Sleep(stopToneHold)
	s.tone.NoTone(s.pin)
}
