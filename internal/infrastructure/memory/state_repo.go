// Package memory holds an in-process conversation state store used when no
// database is configured, and in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"

	"confirmbot/internal/domain"
	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/output"
)

var _ output.ConversationStateRepository = (*StateRepository)(nil)

// StateRepository keeps encoded snapshots so callers never share maps with
// the store. Values round-trip through JSON exactly as they do in Postgres.
type StateRepository struct {
	mu     sync.RWMutex
	states map[string][]byte
}

func NewStateRepository() *StateRepository {
	return &StateRepository{states: make(map[string][]byte)}
}

func (r *StateRepository) Load(_ context.Context, conversationID string) (*entities.ConversationState, error) {
	r.mu.RLock()
	raw, ok := r.states[conversationID]
	r.mu.RUnlock()
	if !ok {
		return entities.NewConversationState(conversationID), nil
	}
	var s entities.ConversationState
	if err := sonic.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode conversation state: %w", err)
	}
	if s.Memory == nil {
		s.Memory = map[string]any{}
	}
	return &s, nil
}

func (r *StateRepository) Save(_ context.Context, state *entities.ConversationState) error {
	raw, err := sonic.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode conversation state: %w", err)
	}
	r.mu.Lock()
	r.states[state.ConversationID] = raw
	r.mu.Unlock()
	return nil
}

func (r *StateRepository) Delete(_ context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.states[conversationID]; !ok {
		return fmt.Errorf("delete conversation state %s: %w", conversationID, domain.ErrStateNotFound)
	}
	delete(r.states, conversationID)
	return nil
}
