package firmware

import (
	"log/slog"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ports"
)

// Deps are the hardware ports the controller is wired to.
type Deps struct {
	Pins  ports.PinDriver
	Tone  ports.ToneDriver
	Clock ports.Clock
	Noise ports.NoiseSource

	Logger *slog.Logger
}
