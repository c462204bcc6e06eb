// Package firmware implements the dice roller control program: the BCD
// display driver, the two buzzer effects, the tumbling animation, and the
// button poll loop that ties them together.
//
// All hardware access goes through the ports package, so the same firmware
// runs against the simulated board, the terminal simulator, or a real GPIO
// backend. Everything is single-goroutine and synchronous: each effect blocks
// for its stated duration on the injected clock, and a roll cycle can never
// overlap another.
package firmware
