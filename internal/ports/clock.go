package ports

import "time"

// Clock is the sole timing primitive of the control loop. Injecting it lets
// tests and headless simulation run the animation without wall-clock waits.
type Clock interface {
	Sleep(d time.Duration)
}
