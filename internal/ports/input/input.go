package input

import (
	"context"

	"confirmbot/internal/domain/entities"
)

// InputRecognizer is the capability an input dialog loop drives: recognize
// the value held in the input slot, and decorate the outgoing prompt.
type InputRecognizer interface {
	ID() string
	RecognizeInput(ctx context.Context, turn *entities.Turn) (entities.Recognition, error)
	RenderPrompt(ctx context.Context, turn *entities.Turn, base *entities.Activity) (*entities.Activity, error)
}

// DialogUseCase runs input dialogs over conversation turns.
type DialogUseCase interface {
	Begin(ctx context.Context, dialogID string, activity *entities.Activity) (*entities.TurnResult, error)
	Continue(ctx context.Context, activity *entities.Activity) (*entities.TurnResult, error)
	Cancel(ctx context.Context, conversationID string) error
	Dialogs() []string
}
