package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"confirmbot/internal/domain"
	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/output"
)

var _ output.ConversationStateRepository = (*StateRepository)(nil)

const (
	selectStateSQL = `SELECT conversation_id, dialog_id, turn_count, has_value, input_value, memory, updated_at
FROM conversation_states WHERE conversation_id = $1`

	upsertStateSQL = `INSERT INTO conversation_states
    (conversation_id, dialog_id, turn_count, has_value, input_value, memory)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (conversation_id) DO UPDATE SET
    dialog_id   = EXCLUDED.dialog_id,
    turn_count  = EXCLUDED.turn_count,
    has_value   = EXCLUDED.has_value,
    input_value = EXCLUDED.input_value,
    memory      = EXCLUDED.memory,
    updated_at  = NOW()
RETURNING updated_at`

	deleteStateSQL = `DELETE FROM conversation_states WHERE conversation_id = $1`
)

// StateRepository stores conversation state in PostgreSQL.
type StateRepository struct {
	pool *pgxpool.Pool
}

func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{pool: pool}
}

func (r *StateRepository) Load(ctx context.Context, conversationID string) (*entities.ConversationState, error) {
	var row stateRow
	err := r.pool.QueryRow(ctx, selectStateSQL, conversationID).Scan(
		&row.ConversationID,
		&row.DialogID,
		&row.TurnCount,
		&row.HasValue,
		&row.InputValue,
		&row.Memory,
		&row.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.NewConversationState(conversationID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation state: %w", err)
	}
	return stateToDomain(row)
}

func (r *StateRepository) Save(ctx context.Context, state *entities.ConversationState) error {
	row, err := stateFromDomain(state)
	if err != nil {
		return err
	}
	var updatedAt pgtype.Timestamptz
	err = r.pool.QueryRow(ctx, upsertStateSQL,
		row.ConversationID,
		row.DialogID,
		row.TurnCount,
		row.HasValue,
		row.InputValue,
		row.Memory,
	).Scan(&updatedAt)
	if err != nil {
		return fmt.Errorf("save conversation state: %w", err)
	}
	state.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *StateRepository) Delete(ctx context.Context, conversationID string) error {
	tag, err := r.pool.Exec(ctx, deleteStateSQL, conversationID)
	if err != nil {
		return fmt.Errorf("delete conversation state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete conversation state %s: %w", conversationID, domain.ErrStateNotFound)
	}
	return nil
}
