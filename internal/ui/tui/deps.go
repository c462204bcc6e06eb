package tui

import (
	"log/slog"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/domain"
)

type Deps struct {
	Config domain.Config

	Logger *slog.Logger
	Debug  bool
}
