package firmware

import (
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ports"
)

// Display drives a die's three BCD bit lines. The seven-segment decoder's
// fourth input is tied low externally, so only values 0-7 are representable.
type Display struct {
	pins ports.PinDriver
}

func NewDisplay(pins ports.PinDriver) *Display {
	return &Display{pins: pins}
}

// ShowNumber writes bits 0, 1, 2 of n to the three pins in order. There is no
// validation and no error path: an out-of-range value still produces a
// defined, if meaningless, 3-bit pattern. Callers keep n within [1,6].
func (d *Display) ShowNumber(n domain.Face, pins [3]domain.Pin) {
	for i, p := range pins {
		d.pins.Set(p, n.Bit(i))
	}
}
