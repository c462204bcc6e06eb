package domain

import "fmt"

// PinMap is the immutable pin-assignment value object handed to the firmware
// at construction time. Die pins are the three BCD bit lines per die, LSB
// first (A, B, C); the decoders' D lines are tied low externally and never
// driven.
type PinMap struct {
	Die1 [3]Pin
	Die2 [3]Pin

	// Buzzer must be a tone-capable output.
	Buzzer Pin

	// Buttons are active-low inputs, idle-high via external pull-ups.
	Button1 Pin
	Button2 Pin

	// Noise is the analog channel sampled once at startup to seed the RNG.
	// It is expected to be left unconnected so the sample floats.
	Noise Pin
}

// DefaultPinMap returns the wiring of the reference board.
func DefaultPinMap() PinMap {
	return PinMap{
		Die1:    [3]Pin{3, 4, 5},
		Die2:    [3]Pin{8, 9, 10},
		Buzzer:  6,
		Button1: 2,
		Button2: 11,
		Noise:   0,
	}
}

// Validate rejects pin maps that assign the same digital pin twice. The noise
// channel lives in the analog number space and is exempt.
func (m PinMap) Validate() error {
	seen := map[Pin]string{}

	claim := func(p Pin, name string) error {
		if prev, ok := seen[p]; ok {
			return &OpError{
				Op:   "pinmap.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("pin %d assigned to both %s and %s: %w", p, prev, name, ErrInvalidConfig),
			}
		}
		seen[p] = name
		return nil
	}

	for i, p := range m.Die1 {
		if err := claim(p, fmt.Sprintf("die1[%d]", i)); err != nil {
			return err
		}
	}
	for i, p := range m.Die2 {
		if err := claim(p, fmt.Sprintf("die2[%d]", i)); err != nil {
			return err
		}
	}
	if err := claim(m.Buzzer, "buzzer"); err != nil {
		return err
	}
	if err := claim(m.Button1, "button1"); err != nil {
		return err
	}
	return claim(m.Button2, "button2")
}
