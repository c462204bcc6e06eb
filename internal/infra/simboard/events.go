package simboard

import (
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

// EventKind discriminates the recorded hardware effects.
type EventKind int

const (
	EventConfigure EventKind = iota
	EventWrite
	EventTone
	EventSilence
)

func (k EventKind) String() string {
	switch k {
	case EventConfigure:
		return "configure"
	case EventWrite:
		return "write"
	case EventTone:
		return "tone"
	case EventSilence:
		return "silence"
	default:
		return "unknown"
	}
}

// Event is one recorded hardware effect. Only the fields relevant to the kind
// are set.
type Event struct {
	Kind     EventKind
	Pin      domain.Pin
	Mode     domain.PinMode // configure
	High     bool           // write
	FreqHz   uint16         // tone
	Duration time.Duration  // tone
}

// Events returns a copy of the ordered hardware-event log.
func (b *Board) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// Writes returns the history of levels written to a pin, oldest first.
func (b *Board) Writes(pin domain.Pin) []bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]bool, len(b.writes[pin]))
	copy(out, b.writes[pin])
	return out
}

// ToneEvents returns every tone start, oldest first.
func (b *Board) ToneEvents() []Event {
	return b.eventsOfKind(EventTone)
}

// Silences counts how many times the buzzer was explicitly silenced.
func (b *Board) Silences() int {
	return len(b.eventsOfKind(EventSilence))
}

// ToneActive reports whether a tone is sounding and at which frequency.
func (b *Board) ToneActive() (bool, uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.toneOn, b.toneFreq
}

func (b *Board) eventsOfKind(kind EventKind) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []Event
	for _, e := range b.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
