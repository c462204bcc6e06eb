// Package simboard is an in-memory board: it implements the pin, tone, and
// noise ports and records every hardware effect in order, so tests can assert
// on exact sequences and the terminal simulator can render the pins' state.
package simboard

import (
	"sync"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ports"
)

// Board simulates the dice roller's hardware. Safe for concurrent use: the UI
// goroutine injects button presses while the firmware goroutine polls.
//
// Button presses are latched: Press asserts the active-low level until the
// firmware samples the pin once, so a short keypress is never lost between
// polls.
type Board struct {
	mu      sync.Mutex
	modes   map[domain.Pin]domain.PinMode
	levels  map[domain.Pin]bool
	latched map[domain.Pin]bool
	writes  map[domain.Pin][]bool
	events  []Event

	toneOn   bool
	toneFreq uint16
	noise    uint16
}

var (
	_ ports.PinDriver   = (*Board)(nil)
	_ ports.ToneDriver  = (*Board)(nil)
	_ ports.NoiseSource = (*Board)(nil)
)

// New returns a board whose noise channel floats: absent SetNoise, reads
// yield a time-derived sample, like an unconnected analog input.
func New() *Board {
	return &Board{
		modes:   map[domain.Pin]domain.PinMode{},
		levels:  map[domain.Pin]bool{},
		latched: map[domain.Pin]bool{},
		writes:  map[domain.Pin][]bool{},
		noise:   uint16(time.Now().UnixNano()),
	}
}

// Configure sets a pin's direction. Inputs idle high, as the external
// pull-ups hold them; outputs start low.
func (b *Board) Configure(pin domain.Pin, mode domain.PinMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.modes[pin] = mode
	b.levels[pin] = mode == domain.PinInput
	b.events = append(b.events, Event{Kind: EventConfigure, Pin: pin, Mode: mode})
}

// Set drives an output level. Like real hardware, it never fails; writes to
// unconfigured pins are recorded all the same.
func (b *Board) Set(pin domain.Pin, high bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.levels[pin] = high
	b.writes[pin] = append(b.writes[pin], high)
	b.events = append(b.events, Event{Kind: EventWrite, Pin: pin, High: high})
}

// Get samples a pin. A latched press reads low exactly once, then clears.
func (b *Board) Get(pin domain.Pin) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.latched[pin] {
		delete(b.latched, pin)
		return false
	}
	return b.levels[pin]
}

// Tone starts a square wave; a wave already sounding is replaced.
func (b *Board) Tone(pin domain.Pin, freqHz uint16, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.toneOn = true
	b.toneFreq = freqHz
	b.events = append(b.events, Event{Kind: EventTone, Pin: pin, FreqHz: freqHz, Duration: d})
}

// NoTone silences the buzzer. Idempotent: silencing a silent pin is recorded
// but raises no fault.
func (b *Board) NoTone(pin domain.Pin) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.toneOn = false
	b.toneFreq = 0
	b.events = append(b.events, Event{Kind: EventSilence, Pin: pin})
}

// ReadNoise returns the analog sample for the noise channel.
func (b *Board) ReadNoise(_ domain.Pin) uint16 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.noise
}

// SetNoise pins the noise sample, making the firmware's seed reproducible.
func (b *Board) SetNoise(v uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.noise = v
}

// Press latches an active-low button press until the firmware samples it.
func (b *Board) Press(pin domain.Pin) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.latched[pin] = true
}

// SetLevel forces a raw pin level, bypassing the press latch. Tests use it to
// hold a button down across several polls.
func (b *Board) SetLevel(pin domain.Pin, high bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[pin] = high
}

// Level reports the current electrical level of a pin.
func (b *Board) Level(pin domain.Pin) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.levels[pin]
}

// Mode reports the configured direction of a pin.
func (b *Board) Mode(pin domain.Pin) (domain.PinMode, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.modes[pin]
	return m, ok
}

// DecodeFace reads the value currently on a die's three BCD lines, LSB first.
func (b *Board) DecodeFace(pins [3]domain.Pin) domain.Face {
	b.mu.Lock()
	defer b.mu.Unlock()

	var v int
	for i, p := range pins {
		if b.levels[p] {
			v |= 1 << i
		}
	}
	return domain.Face(v)
}
