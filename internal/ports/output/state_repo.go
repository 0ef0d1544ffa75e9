package output

import (
	"context"

	"confirmbot/internal/domain/entities"
)

// ConversationStateRepository persists conversation state between turns.
// Load returns a fresh state when nothing is stored for the conversation.
type ConversationStateRepository interface {
	Load(ctx context.Context, conversationID string) (*entities.ConversationState, error)
	Save(ctx context.Context, state *entities.ConversationState) error
	Delete(ctx context.Context, conversationID string) error
}
