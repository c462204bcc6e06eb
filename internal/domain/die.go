package domain

import (
	"math/rand"
	"time"
)

// Face is a die face value. Valid faces are 1 through 6; the display path does
// not validate, so an out-of-range Face still yields a defined 3-bit pattern.
type Face int

const (
	FaceMin Face = 1
	FaceMax Face = 6
)

// Valid reports whether f is one of the six die faces.
func (f Face) Valid() bool {
	return f >= FaceMin && f <= FaceMax
}

// Bit returns bit i of the face value, LSB first. The three BCD lines A, B, C
// carry bits 0, 1, 2; the decoder's D line is grounded externally.
func (f Face) Bit(i int) bool {
	return (f>>i)&1 == 1
}

// RandomFace draws a face uniformly from {1..6}.
func RandomFace(rng *rand.Rand) Face {
	return Face(rng.Intn(int(FaceMax)) + 1)
}

// RollResult holds the final settled faces of one roll cycle. The values are
// drawn fresh after the animation; they are intentionally not derived from the
// last animation frame.
type RollResult struct {
	Die1 Face `json:"die1"`
	Die2 Face `json:"die2"`
}

// RollSession is an ordered record of roll cycles, suitable for saving as a
// run artifact.
type RollSession struct {
	StartedAt time.Time    `json:"started_at"`
	EndedAt   time.Time    `json:"ended_at"`
	Seed      uint16       `json:"seed"`
	Rolls     []RollResult `json:"rolls"`
}

// FaceCounts tallies how many times each face settled, per die. Index 0 is
// unused so counts[f] lines up with Face f; out-of-range faces are ignored.
func (s RollSession) FaceCounts() (die1, die2 [7]int) {
	for _, r := range s.Rolls {
		if r.Die1.Valid() {
			die1[r.Die1]++
		}
		if r.Die2.Valid() {
			die2[r.Die2]++
		}
	}
	return die1, die2
}
