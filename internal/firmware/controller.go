package firmware

import (
	"context"
	"io"
	"log/slog"
	"math/rand"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/ports"
)

// Controller is the input/event loop: it polls the two buttons and, on a
// press, runs exactly one roll cycle (animate, stop sound, final display,
// debounce). Presses during a cycle are lost, not queued.
type Controller struct {
	cfg   domain.Config
	pins  ports.PinDriver
	tone  ports.ToneDriver
	clock ports.Clock
	noise ports.NoiseSource
	log   *slog.Logger

	seed    uint16
	rng     *rand.Rand
	display *Display
	sound   *Sound
	anim    *Animator
}

func New(cfg domain.Config, deps Deps) *Controller {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Controller{
		cfg:   cfg,
		pins:  deps.Pins,
		tone:  deps.Tone,
		clock: deps.Clock,
		noise: deps.Noise,
		log:   log,
	}
}

// Setup runs the one-time hardware initialization: the six BCD pins become
// outputs driven low, the buttons become inputs (idle-high via external
// pull-ups), the buzzer becomes a silent output, and the RNG is seeded from a
// floating analog sample so power cycles don't replay the same rolls.
//
// Setup must be called before Poll; Run does so itself.
func (c *Controller) Setup() {
	for _, p := range c.cfg.Pins.Die1 {
		c.pins.Configure(p, domain.PinOutput)
		c.pins.Set(p, false)
	}
	for _, p := range c.cfg.Pins.Die2 {
		c.pins.Configure(p, domain.PinOutput)
		c.pins.Set(p, false)
	}

	c.pins.Configure(c.cfg.Pins.Button1, domain.PinInput)
	c.pins.Configure(c.cfg.Pins.Button2, domain.PinInput)

	c.pins.Configure(c.cfg.Pins.Buzzer, domain.PinOutput)
	c.tone.NoTone(c.cfg.Pins.Buzzer)

	c.seed = c.noise.ReadNoise(c.cfg.Pins.Noise)
	c.rng = rand.New(rand.NewSource(int64(c.seed)))

	c.display = NewDisplay(c.pins)
	c.sound = NewSound(c.tone, c.clock, c.rng, c.cfg.Pins.Buzzer)
	c.anim = NewAnimator(c.display, c.sound, c.clock, c.rng, c.cfg.Pins, c.cfg.Timing.FrameDelayStep)

	c.log.Info("controller.setup", "seed", c.seed)
}

// Seed returns the noise sample the RNG was seeded with during Setup.
func (c *Controller) Seed() uint16 {
	return c.seed
}

// Poll samples the buttons once. If either reads active (low), it runs one
// full roll cycle and returns the settled result with ok=true.
func (c *Controller) Poll() (result domain.RollResult, ok bool) {
	if !c.buttonPressed() {
		return domain.RollResult{}, false
	}
	return c.rollCycle(), true
}

// Run executes Setup and then the poll loop, pacing idle iterations by the
// configured poll interval, until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.Setup()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, ok := c.Poll(); !ok {
			c.clock.Sleep(c.cfg.Timing.PollInterval)
		}
	}
}

// buttonPressed reads the active-low buttons. Both pins are sampled every
// poll, so a simultaneous press of both consumes both levels and triggers
// exactly one cycle.
func (c *Controller) buttonPressed() bool {
	b1 := !c.pins.Get(c.cfg.Pins.Button1)
	b2 := !c.pins.Get(c.cfg.Pins.Button2)
	return b1 || b2
}

// rollCycle runs the strict sequence animate, stop sound, final display,
// debounce delay. Within the cycle the loop is blocked, so a simultaneous
// press of the other button cannot double-trigger.
func (c *Controller) rollCycle() domain.RollResult {
	c.log.Debug("roll.triggered")

	c.anim.RollDice(c.cfg.Timing.Frames, c.cfg.Timing.FrameDelay)
	c.sound.PlayStopSound()

	// The settled faces are fresh independent draws, not the last animation
	// frame.
	res := domain.RollResult{
		Die1: domain.RandomFace(c.rng),
		Die2: domain.RandomFace(c.rng),
	}
	c.display.ShowNumber(res.Die1, c.cfg.Pins.Die1)
	c.display.ShowNumber(res.Die2, c.cfg.Pins.Die2)

	c.clock.Sleep(c.cfg.Timing.Debounce)

	c.log.Info("roll.result", "die1", int(res.Die1), "die2", int(res.Die2))
	return res
}
