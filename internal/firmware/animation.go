package firmware

import (
	"math/rand"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ports"
)

// Animator runs the tumbling animation: repeated randomized display updates
// synchronized with the rolling sound, slowing down toward the end.
type Animator struct {
	display *Display
	sound   *Sound
	clock   ports.Clock
	rng     *rand.Rand
	pins    domain.PinMap
	step    time.Duration
}

func NewAnimator(display *Display, sound *Sound, clock ports.Clock, rng *rand.Rand, pins domain.PinMap, step time.Duration) *Animator {
	return &Animator{
		display: display,
		sound:   sound,
		clock:   clock,
		rng:     rng,
		pins:    pins,
		step:    step,
	}
}

// RollDice runs frames animation frames. Frame i plays the roll sound at
// intensity i/2, shows a fresh independent draw on each die, and sleeps
// baseDelay + i*step.
//
// The halved intensity truncates: frames 0 and 1 are silent and the audio
// ramps at half the visual rate. The settled result is also not taken from
// the last frame; the caller re-rolls afterwards. Both are long-standing
// behavior of the original board and are kept as-is.
func (a *Animator) RollDice(frames int, baseDelay time.Duration) {
	for i := 0; i < frames; i++ {
		a.sound.PlayRollSound(i / 2)
		a.display.ShowNumber(domain.RandomFace(a.rng), a.pins.Die1)
		a.display.ShowNumber(domain.RandomFace(a.rng), a.pins.Die2)
		a.clock.Sleep(baseDelay + time.Duration(i)*a.step)
	}
}
