package ports

import "github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"

// RollStore persists roll sessions (e.g., as JSON artifacts on disk).
type RollStore interface {
	SaveSession(s domain.RollSession) (id string, err error)
}
