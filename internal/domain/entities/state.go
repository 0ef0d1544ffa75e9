package entities

import (
	"strings"
	"time"
)

// Memory scopes visible to expressions and prompt templates.
const (
	ScopeUser         = "user"
	ScopeConversation = "conversation"
)

// DialogState is the state of the input dialog currently waiting for a reply.
// Value is the shared input slot; HasValue distinguishes an empty slot from a
// slot holding nil.
type DialogState struct {
	DialogID  string `json:"dialog_id"`
	TurnCount int    `json:"turn_count"`
	HasValue  bool   `json:"has_value"`
	Value     any    `json:"value,omitempty"`
}

// Input returns the current input slot.
func (d *DialogState) Input() (any, bool) {
	if d == nil || !d.HasValue {
		return nil, false
	}
	return d.Value, true
}

func (d *DialogState) SetInput(v any) {
	d.Value = v
	d.HasValue = true
}

func (d *DialogState) ClearInput() {
	d.Value = nil
	d.HasValue = false
}

// ConversationState is everything persisted for one conversation between turns.
type ConversationState struct {
	ConversationID string         `json:"conversation_id"`
	Active         *DialogState   `json:"active,omitempty"`
	Memory         map[string]any `json:"memory"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewConversationState returns an empty state for conversationID.
func NewConversationState(conversationID string) *ConversationState {
	return &ConversationState{
		ConversationID: conversationID,
		Memory:         map[string]any{},
	}
}

// Scope returns the memory scope name, creating it if needed.
func (s *ConversationState) Scope(name string) map[string]any {
	if s.Memory == nil {
		s.Memory = map[string]any{}
	}
	m, ok := s.Memory[name].(map[string]any)
	if !ok {
		m = map[string]any{}
		s.Memory[name] = m
	}
	return m
}

// GetPath reads a dotted path such as "user.profile.name" from memory.
func (s *ConversationState) GetPath(path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = s.Memory
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetPath writes v at a dotted path, creating intermediate objects.
func (s *ConversationState) SetPath(path string, v any) {
	if s.Memory == nil {
		s.Memory = map[string]any{}
	}
	parts := strings.Split(path, ".")
	m := s.Memory
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = v
}

// Turn bundles the incoming activity with the state it operates on.
type Turn struct {
	Activity *Activity
	State    *ConversationState
}

// DialogStatus reports whether a dialog is still waiting after a turn.
type DialogStatus int

const (
	DialogWaiting DialogStatus = iota
	DialogComplete
)

// TurnResult is what a turn produced: outgoing activities and, once the
// dialog completes, its final value. Locale is the locale the turn ran in.
type TurnResult struct {
	Status     DialogStatus
	Value      any
	Locale     string
	Activities []*Activity
}
