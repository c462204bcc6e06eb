package simboard

import "github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"

// Snapshot is a point-in-time view of the board for rendering.
type Snapshot struct {
	Die1 domain.Face
	Die2 domain.Face

	ToneOn   bool
	ToneFreq uint16

	Button1Held bool
	Button2Held bool
}

// Snapshot reads the board through a pin map: the two decoded die values, the
// buzzer state, and whether either button is currently asserted.
func (b *Board) Snapshot(m domain.PinMap) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	decode := func(pins [3]domain.Pin) domain.Face {
		var v int
		for i, p := range pins {
			if b.levels[p] {
				v |= 1 << i
			}
		}
		return domain.Face(v)
	}

	held := func(p domain.Pin) bool {
		return b.latched[p] || !b.levels[p]
	}

	return Snapshot{
		Die1:        decode(m.Die1),
		Die2:        decode(m.Die2),
		ToneOn:      b.toneOn,
		ToneFreq:    b.toneFreq,
		Button1Held: held(m.Button1),
		Button2Held: held(m.Button2),
	}
}
