package database

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5/pgtype"

	"confirmbot/internal/domain/entities"
)

// stateRow mirrors a conversation_states row.
type stateRow struct {
	ConversationID string
	DialogID       pgtype.Text
	TurnCount      int32
	HasValue       bool
	InputValue     []byte
	Memory         []byte
	UpdatedAt      pgtype.Timestamptz
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func stateToDomain(r stateRow) (*entities.ConversationState, error) {
	s := entities.NewConversationState(r.ConversationID)
	s.UpdatedAt = pgtypeTimestamptzToTime(r.UpdatedAt)
	if len(r.Memory) > 0 {
		if err := sonic.Unmarshal(r.Memory, &s.Memory); err != nil {
			return nil, fmt.Errorf("decode memory: %w", err)
		}
		if s.Memory == nil {
			s.Memory = map[string]any{}
		}
	}
	if r.DialogID.Valid {
		active := &entities.DialogState{DialogID: r.DialogID.String, TurnCount: int(r.TurnCount)}
		if r.HasValue {
			var v any
			if len(r.InputValue) > 0 {
				if err := sonic.Unmarshal(r.InputValue, &v); err != nil {
					return nil, fmt.Errorf("decode input value: %w", err)
				}
			}
			active.SetInput(v)
		}
		s.Active = active
	}
	return s, nil
}

func stateFromDomain(s *entities.ConversationState) (stateRow, error) {
	r := stateRow{ConversationID: s.ConversationID}
	memory, err := sonic.Marshal(s.Memory)
	if err != nil {
		return r, fmt.Errorf("encode memory: %w", err)
	}
	r.Memory = memory
	if s.Active != nil {
		r.DialogID = pgtype.Text{String: s.Active.DialogID, Valid: true}
		r.TurnCount = int32(s.Active.TurnCount)
		if v, ok := s.Active.Input(); ok {
			r.HasValue = true
			if r.InputValue, err = sonic.Marshal(v); err != nil {
				return r, fmt.Errorf("encode input value: %w", err)
			}
		}
	}
	return r, nil
}
