package domain

import (
	"fmt"
	"time"
)

// Timing groups the delays the control loop is built on. All waits go through
// the injected clock, so a virtual clock can run these instantly in tests and
// headless simulation.
type Timing struct {
	// Frames is the number of animation frames per roll.
	Frames int

	// FrameDelay is the base inter-frame delay; frame i waits
	// FrameDelay + i*FrameDelayStep, so the animation visibly slows down.
	FrameDelay     time.Duration
	FrameDelayStep time.Duration

	// Debounce is the blocking delay after a completed cycle before the
	// buttons are polled again.
	Debounce time.Duration

	// PollInterval paces the idle poll loop. Bare firmware busy-spins here; a
	// hosted process must yield.
	PollInterval time.Duration
}

// DefaultTiming returns the reference timings: a 20-frame animation starting
// at 50ms per frame and stretching by 2ms each frame, with a 300ms debounce.
func DefaultTiming() Timing {
	return Timing{
		Frames:         20,
		FrameDelay:     50 * time.Millisecond,
		FrameDelayStep: 2 * time.Millisecond,
		Debounce:       300 * time.Millisecond,
		PollInterval:   time.Millisecond,
	}
}

func (t Timing) Validate() error {
	if t.Frames < 0 {
		return invalidTiming("frames", "must not be negative")
	}
	if t.FrameDelay < 0 || t.FrameDelayStep < 0 || t.Debounce < 0 || t.PollInterval < 0 {
		return invalidTiming("delays", "must not be negative")
	}
	return nil
}

func invalidTiming(field, msg string) error {
	return &OpError{
		Op:   "timing.validate",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig),
	}
}

// Config is the full board configuration: wiring plus timings.
type Config struct {
	Pins   PinMap
	Timing Timing
}

// DefaultConfig provides sane defaults if board.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Pins:   DefaultPinMap(),
		Timing: DefaultTiming(),
	}
}

func (c Config) Validate() error {
	if err := c.Pins.Validate(); err != nil {
		return err
	}
	return c.Timing.Validate()
}
