package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confirmbot/internal/domain"
	"confirmbot/internal/domain/entities"
)

func TestStateRepository_LoadMissingReturnsFreshState(t *testing.T) {
	repo := NewStateRepository()

	s, err := repo.Load(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", s.ConversationID)
	assert.Nil(t, s.Active)
	assert.NotNil(t, s.Memory)
}

func TestStateRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository()

	s := entities.NewConversationState("c1")
	s.Active = &entities.DialogState{DialogID: "confirm_order", TurnCount: 2}
	s.Active.SetInput(true)
	s.SetPath("user.confirmed", false)
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got.Active)
	assert.Equal(t, "confirm_order", got.Active.DialogID)
	assert.Equal(t, 2, got.Active.TurnCount)
	v, ok := got.Active.Input()
	assert.True(t, ok)
	assert.Equal(t, true, v)
	confirmed, ok := got.GetPath("user.confirmed")
	assert.True(t, ok)
	assert.Equal(t, false, confirmed)
}

func TestStateRepository_LoadedStateIsDetached(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository()

	s := entities.NewConversationState("c1")
	s.SetPath("user.name", "ada")
	require.NoError(t, repo.Save(ctx, s))

	s.SetPath("user.name", "grace")
	got, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	name, _ := got.GetPath("user.name")
	assert.Equal(t, "ada", name)
}

func TestStateRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository()

	require.NoError(t, repo.Save(ctx, entities.NewConversationState("c1")))
	require.NoError(t, repo.Delete(ctx, "c1"))
	assert.ErrorIs(t, repo.Delete(ctx, "c1"), domain.ErrStateNotFound)
}
