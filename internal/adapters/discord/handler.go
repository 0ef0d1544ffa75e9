package discord

import (
	"go.uber.org/zap"

	"confirmbot/internal/ports/input"
	"confirmbot/internal/ports/output"
)

// Handler handles Discord events using the dialog use case.
type Handler struct {
	dialogs    input.DialogUseCase
	translator output.T
	logger     *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(dialogs input.DialogUseCase, translator output.T, logger *zap.Logger) *Handler {
	return &Handler{
		dialogs:    dialogs,
		translator: translator,
		logger:     logger,
	}
}
