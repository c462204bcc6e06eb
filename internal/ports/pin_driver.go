package ports

import "github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"

// PinDriver configures and drives digital pins. Operations are unconditional
// hardware effects with no failure path; writing to an unconfigured or
// nonexistent pin is defined-but-meaningless, never an error.
type PinDriver interface {
	Configure(pin domain.Pin, mode domain.PinMode)
	Set(pin domain.Pin, high bool)
	Get(pin domain.Pin) bool
}
