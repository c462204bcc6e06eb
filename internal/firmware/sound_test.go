package firmware

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/clock"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/simboard"
)

func newTestSound() (*Sound, *simboard.Board, *clock.Virtual) {
	board := simboard.New()
	clk := clock.NewVirtual()
	rng := rand.New(rand.NewSource(7))
	return NewSound(board, clk, rng, 6), board, clk
}

func TestPlayRollSoundEmissions(t *testing.T) {
	s, board, clk := newTestSound()

	s.PlayRollSound(5)

	tones := board.ToneEvents()
	if len(tones) != 5 {
		t.Fatalf("tone emissions = %d, want 5", len(tones))
	}
	for i, e := range tones {
		if e.FreqHz < 500 || e.FreqHz >= 1000 {
			t.Errorf("tone[%d] freq = %d, want in [500,1000)", i, e.FreqHz)
		}
		if e.Duration != 20*time.Millisecond {
			t.Errorf("tone[%d] duration = %v, want 20ms", i, e.Duration)
		}
	}

	slept := clk.Slept()
	if len(slept) != 5 {
		t.Fatalf("holds = %d, want 5", len(slept))
	}
	for i, d := range slept {
		if d != 20*time.Millisecond {
			t.Errorf("hold[%d] = %v, want 20ms", i, d)
		}
	}

	// The buzzer ends silent, and the silence is the last hardware effect.
	events := board.Events()
	if events[len(events)-1].Kind != simboard.EventSilence {
		t.Error("expected explicit silence after the tone loop")
	}
	if on, _ := board.ToneActive(); on {
		t.Error("buzzer should be silent after roll sound")
	}
}

func TestPlayRollSoundZeroIntensity(t *testing.T) {
	s, board, clk := newTestSound()

	s.PlayRollSound(0)

	if got := len(board.ToneEvents()); got != 0 {
		t.Errorf("tone emissions = %d, want 0", got)
	}
	if got := len(clk.Slept()); got != 0 {
		t.Errorf("sleeps = %d, want 0", got)
	}
	if got := board.Silences(); got != 1 {
		t.Errorf("silences = %d, want immediate single silence", got)
	}
}

func TestPlayStopSound(t *testing.T) {
	s, board, clk := newTestSound()

	s.PlayStopSound()

	tones := board.ToneEvents()
	if len(tones) != 1 {
		t.Fatalf("tone emissions = %d, want 1", len(tones))
	}
	if tones[0].FreqHz != 200 || tones[0].Duration != 100*time.Millisecond {
		t.Errorf("stop tone = %dHz/%v, want 200Hz/100ms", tones[0].FreqHz, tones[0].Duration)
	}

	slept := clk.Slept()
	if len(slept) != 1 || slept[0] != 100*time.Millisecond {
		t.Errorf("hold = %v, want one 100ms sleep", slept)
	}
	if board.Silences() != 1 {
		t.Errorf("silences = %d, want 1", board.Silences())
	}
}
