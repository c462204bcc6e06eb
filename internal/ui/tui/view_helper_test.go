package tui

import (
	"strings"
	"testing"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

func TestRenderDigitShapes(t *testing.T) {
	// Spot-check a few glyphs against the decoder's segments.
	if got := renderDigit(1); strings.Contains(got, "_") {
		t.Errorf("digit 1 should have no horizontal segments:\n%s", got)
	}
	if got := renderDigit(0); !strings.Contains(got, "| |") {
		t.Errorf("digit 0 missing open middle row:\n%s", got)
	}

	for f := domain.Face(0); f <= 7; f++ {
		rows := strings.Split(renderDigit(f), "\n")
		if len(rows) != 3 {
			t.Fatalf("digit %d renders %d rows, want 3", f, len(rows))
		}
		for i, r := range rows {
			if len(r) != 3 {
				t.Errorf("digit %d row %d = %q, want width 3", f, i, r)
			}
		}
	}
}

func TestRenderDigitMasksToThreeBits(t *testing.T) {
	if renderDigit(9) != renderDigit(1) {
		t.Error("value 9 should render as its low 3 bits (1)")
	}
}
