package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"confirmbot/internal/domain"
	"confirmbot/internal/domain/entities"
	"confirmbot/internal/ports/input"
	"confirmbot/internal/ports/output"
)

var _ input.DialogUseCase = (*DialogService)(nil)

// DialogService loads conversation state, runs the addressed input dialog for
// one turn and saves the state back. Turns of the same conversation never
// overlap; different conversations run in parallel.
type DialogService struct {
	repo    output.ConversationStateRepository
	dialogs map[string]*InputDialog
	locks   *conversationLocks
	logger  *zap.Logger
	now     func() time.Time
}

func NewDialogService(repo output.ConversationStateRepository, logger *zap.Logger) *DialogService {
	return &DialogService{
		repo:    repo,
		dialogs: map[string]*InputDialog{},
		locks:   newConversationLocks(),
		logger:  logger,
		now:     time.Now,
	}
}

// Register adds a dialog under its ID.
func (s *DialogService) Register(d *InputDialog) error {
	if _, exists := s.dialogs[d.ID()]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDialogExists, d.ID())
	}
	s.dialogs[d.ID()] = d
	return nil
}

// Dialogs lists registered dialog IDs in sorted order.
func (s *DialogService) Dialogs() []string {
	ids := make([]string, 0, len(s.dialogs))
	for id := range s.dialogs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Begin starts dialogID in the activity's conversation, replacing any dialog
// that was waiting there.
func (s *DialogService) Begin(ctx context.Context, dialogID string, activity *entities.Activity) (*entities.TurnResult, error) {
	d, ok := s.dialogs[dialogID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDialogNotFound, dialogID)
	}
	return s.run(ctx, activity, func(turn *entities.Turn) (*entities.TurnResult, error) {
		return d.Begin(ctx, turn)
	})
}

// Continue feeds activity to the dialog waiting in its conversation.
func (s *DialogService) Continue(ctx context.Context, activity *entities.Activity) (*entities.TurnResult, error) {
	return s.run(ctx, activity, func(turn *entities.Turn) (*entities.TurnResult, error) {
		if turn.State.Active == nil {
			return nil, domain.ErrNoActiveDialog
		}
		d, ok := s.dialogs[turn.State.Active.DialogID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrDialogNotFound, turn.State.Active.DialogID)
		}
		return d.Continue(ctx, turn)
	})
}

// Cancel drops everything stored for the conversation, including any dialog
// waiting for a reply.
func (s *DialogService) Cancel(ctx context.Context, conversationID string) error {
	unlock := s.locks.lock(conversationID)
	defer unlock()

	if err := s.repo.Delete(ctx, conversationID); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	s.logger.Info("conversation cancelled", zap.String("conversation_id", conversationID))
	return nil
}

func (s *DialogService) run(ctx context.Context, activity *entities.Activity, step func(*entities.Turn) (*entities.TurnResult, error)) (*entities.TurnResult, error) {
	unlock := s.locks.lock(activity.ConversationID)
	defer unlock()

	state, err := s.repo.Load(ctx, activity.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	conversation := state.Scope(entities.ScopeConversation)
	if activity.Locale != "" {
		conversation["locale"] = activity.Locale
	} else if locale, ok := conversation["locale"].(string); ok {
		// Transports that carry no locale on plain messages reuse the last one seen.
		activity.Locale = locale
	}

	turn := &entities.Turn{Activity: activity, State: state}
	result, err := step(turn)
	if errors.Is(err, domain.ErrNoActiveDialog) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("dialog turn failed",
			zap.String("conversation_id", activity.ConversationID),
			zap.Error(err))
		return nil, err
	}

	result.Locale = activity.Locale
	for _, out := range result.Activities {
		out.ChannelID = activity.ChannelID
		out.ConversationID = activity.ConversationID
		if out.Locale == "" {
			out.Locale = activity.Locale
		}
	}

	state.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}

	switch {
	case result.Status == entities.DialogComplete && result.Value == nil:
		s.logger.Warn("dialog ended without a value",
			zap.String("conversation_id", activity.ConversationID))
	case result.Status == entities.DialogComplete:
		s.logger.Info("dialog complete",
			zap.String("conversation_id", activity.ConversationID),
			zap.Any("value", result.Value))
	default:
		s.logger.Debug("dialog waiting",
			zap.String("conversation_id", activity.ConversationID),
			zap.Int("activities", len(result.Activities)))
	}
	return result, nil
}
