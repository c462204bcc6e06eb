package domain

// Pin identifies a board pin. Analog channels share the same number space;
// PinMap documents which assignments are sampled as analog.
type Pin uint8

// PinMode is the direction a pin is configured with. Inputs rely on external
// pull-up resistors; there is no internal pull-up mode.
type PinMode uint8

const (
	PinOutput PinMode = iota
	PinInput
)

func (m PinMode) String() string {
	switch m {
	case PinOutput:
		return "output"
	case PinInput:
		return "input"
	default:
		return "unknown"
	}
}
