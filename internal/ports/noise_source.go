package ports

import "github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"

// NoiseSource samples an analog channel. The firmware reads a floating input
// once at startup to seed the RNG, so power cycles don't replay the same
// pseudo-random sequence.
type NoiseSource interface {
	ReadNoise(pin domain.Pin) uint16
}
