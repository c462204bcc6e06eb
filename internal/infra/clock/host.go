// Package clock provides the two Clock adapters: a host clock that really
// sleeps and a virtual clock that records delays and returns immediately.
package clock

import (
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ports"
)

// Host sleeps on the wall clock. The interactive simulator uses it so the
// animation plays out in real time.
type Host struct{}

var _ ports.Clock = Host{}

func (Host) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
