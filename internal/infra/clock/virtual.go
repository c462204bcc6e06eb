package clock

import (
	"sync"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ports"
)

// Virtual records every delay and returns immediately. Headless runs and
// tests use it to execute the firmware's blocking sequences instantly while
// still being able to assert on the exact waits.
type Virtual struct {
	mu    sync.Mutex
	slept []time.Duration
}

var _ ports.Clock = (*Virtual)(nil)

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (c *Virtual) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slept = append(c.slept, d)
}

// Slept returns every recorded delay, oldest first.
func (c *Virtual) Slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]time.Duration, len(c.slept))
	copy(out, c.slept)
	return out
}

// Total is the simulated time elapsed across all sleeps.
func (c *Virtual) Total() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum time.Duration
	for _, d := range c.slept {
		sum += d
	}
	return sum
}

// Reset clears the recorded delays.
func (c *Virtual) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slept = nil
}
