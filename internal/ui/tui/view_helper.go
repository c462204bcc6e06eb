package tui

import (
	"strings"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

// segDigits holds the seven-segment glyphs the decoder chips can show for a
// 3-bit input (0-7), three rows each.
var segDigits = [8][3]string{
	{" _ ", "| |", "|_|"}, // 0
	{"   ", "  |", "  |"}, // 1
	{" _ ", " _|", "|_ "}, // 2
	{" _ ", " _|", " _|"}, // 3
	{"   ", "|_|", "  |"}, // 4
	{" _ ", "|_ ", " _|"}, // 5
	{" _ ", "|_ ", "|_|"}, // 6
	{" _ ", "  |", "  |"}, // 7
}

// renderDigit renders what the decoder would display for the given 3-bit
// value. Values above 7 cannot occur: the decoder's D line is tied low.
func renderDigit(f domain.Face) string {
	rows := segDigits[int(f)&0x7]
	return strings.Join(rows[:], "\n")
}
