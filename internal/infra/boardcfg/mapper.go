package boardcfg

import (
	"fmt"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

// Map applies a YAML board file on top of the defaults and validates the
// result. Fields left unset keep the reference board's values.
func Map(path string, yb YAMLBoard) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if yb.Pins != nil {
		if err := mapDiePins(path, "pins.die1", yb.Pins.Die1, &cfg.Pins.Die1); err != nil {
			return domain.Config{}, err
		}
		if err := mapDiePins(path, "pins.die2", yb.Pins.Die2, &cfg.Pins.Die2); err != nil {
			return domain.Config{}, err
		}
		if err := mapPin(path, "pins.buzzer", yb.Pins.Buzzer, &cfg.Pins.Buzzer); err != nil {
			return domain.Config{}, err
		}
		if err := mapPin(path, "pins.button1", yb.Pins.Button1, &cfg.Pins.Button1); err != nil {
			return domain.Config{}, err
		}
		if err := mapPin(path, "pins.button2", yb.Pins.Button2, &cfg.Pins.Button2); err != nil {
			return domain.Config{}, err
		}
		if err := mapPin(path, "pins.noise", yb.Pins.Noise, &cfg.Pins.Noise); err != nil {
			return domain.Config{}, err
		}
	}

	if yb.Timing != nil {
		if yb.Timing.Frames != nil {
			cfg.Timing.Frames = *yb.Timing.Frames
		}
		mapMillis(yb.Timing.FrameDelayMS, &cfg.Timing.FrameDelay)
		mapMillis(yb.Timing.FrameStepMS, &cfg.Timing.FrameDelayStep)
		mapMillis(yb.Timing.DebounceMS, &cfg.Timing.Debounce)
		mapMillis(yb.Timing.PollIntervalMS, &cfg.Timing.PollInterval)
	}

	if err := cfg.Validate(); err != nil {
		if oe, ok := err.(*domain.OpError); ok && oe.Path == "" {
			oe.Path = path
		}
		return domain.Config{}, err
	}
	return cfg, nil
}

func mapDiePins(path, field string, in []int, out *[3]domain.Pin) error {
	if in == nil {
		return nil
	}
	if len(in) != 3 {
		return invalidField(path, field, fmt.Sprintf("expected exactly 3 pins, got %d", len(in)))
	}
	for i, p := range in {
		if p < 0 || p > 255 {
			return invalidField(path, fmt.Sprintf("%s[%d]", field, i), fmt.Sprintf("pin %d out of range", p))
		}
		out[i] = domain.Pin(p)
	}
	return nil
}

func mapPin(path, field string, in *int, out *domain.Pin) error {
	if in == nil {
		return nil
	}
	if *in < 0 || *in > 255 {
		return invalidField(path, field, fmt.Sprintf("pin %d out of range", *in))
	}
	*out = domain.Pin(*in)
	return nil
}

func mapMillis(in *int, out *time.Duration) {
	if in != nil {
		*out = time.Duration(*in) * time.Millisecond
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "boardcfg.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
