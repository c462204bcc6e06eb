package firmware

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/clock"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/simboard"
)

func newTestAnimator(seed int64) (*Animator, *simboard.Board, *clock.Virtual, domain.PinMap) {
	board := simboard.New()
	clk := clock.NewVirtual()
	rng := rand.New(rand.NewSource(seed))
	pins := domain.DefaultPinMap()
	display := NewDisplay(board)
	sound := NewSound(board, clk, rng, pins.Buzzer)
	anim := NewAnimator(display, sound, clk, rng, pins, 2*time.Millisecond)
	return anim, board, clk, pins
}

// framesShown reconstructs the per-frame die values from the write history of
// the three BCD pins. ShowNumber writes each pin exactly once per frame.
func framesShown(board *simboard.Board, pins [3]domain.Pin) []domain.Face {
	w0 := board.Writes(pins[0])
	w1 := board.Writes(pins[1])
	w2 := board.Writes(pins[2])

	out := make([]domain.Face, len(w0))
	for i := range w0 {
		var v int
		if w0[i] {
			v |= 1
		}
		if w1[i] {
			v |= 2
		}
		if w2[i] {
			v |= 4
		}
		out[i] = domain.Face(v)
	}
	return out
}

func TestRollDiceFrameCount(t *testing.T) {
	anim, board, _, pins := newTestAnimator(1)

	anim.RollDice(20, 50*time.Millisecond)

	f1 := framesShown(board, pins.Die1)
	f2 := framesShown(board, pins.Die2)
	if len(f1) != 20 || len(f2) != 20 {
		t.Fatalf("display updates = %d/%d, want 20 per die", len(f1), len(f2))
	}
	for i := range f1 {
		if !f1[i].Valid() || !f2[i].Valid() {
			t.Errorf("frame %d faces = %d/%d, want within [1,6]", i, f1[i], f2[i])
		}
	}
}

func TestRollDiceDiceAreIndependent(t *testing.T) {
	anim, board, _, pins := newTestAnimator(3)

	anim.RollDice(20, 50*time.Millisecond)

	f1 := framesShown(board, pins.Die1)
	f2 := framesShown(board, pins.Die2)
	same := true
	for i := range f1 {
		if f1[i] != f2[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("both dice showed identical sequences; draws should be independent")
	}
}

func TestRollDiceFrameDelaysIncrease(t *testing.T) {
	anim, _, clk, _ := newTestAnimator(1)

	base := 50 * time.Millisecond
	anim.RollDice(20, base)

	// The clock sees both the 20ms sound holds and the frame delays; the
	// frame delays are the only sleeps >= base.
	var frameDelays []time.Duration
	for _, d := range clk.Slept() {
		if d >= base {
			frameDelays = append(frameDelays, d)
		}
	}

	if len(frameDelays) != 20 {
		t.Fatalf("frame delays = %d, want 20", len(frameDelays))
	}
	for i, d := range frameDelays {
		want := base + time.Duration(i)*2*time.Millisecond
		if d != want {
			t.Errorf("frame %d delay = %v, want %v", i, d, want)
		}
	}
}

func TestRollDiceSoundIntensityTruncates(t *testing.T) {
	anim, board, _, _ := newTestAnimator(1)

	anim.RollDice(20, 50*time.Millisecond)

	// Frame i plays i/2 tone slices: frames 0 and 1 are silent and the total
	// is sum(i/2) for i in [0,20) = 90. Every frame still silences once.
	if got := len(board.ToneEvents()); got != 90 {
		t.Errorf("total tone emissions = %d, want 90", got)
	}
	if got := board.Silences(); got != 20 {
		t.Errorf("silences = %d, want one per frame", got)
	}
}

func TestRollDiceZeroFrames(t *testing.T) {
	anim, board, clk, _ := newTestAnimator(1)

	anim.RollDice(0, 50*time.Millisecond)

	if got := len(board.Events()); got != 0 {
		t.Errorf("events = %d, want none", got)
	}
	if got := len(clk.Slept()); got != 0 {
		t.Errorf("sleeps = %d, want none", got)
	}
}
