package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confirmbot/internal/domain"
	"confirmbot/internal/domain/entities"
)

func actions(n int) []entities.CardAction {
	out := make([]entities.CardAction, n)
	for i := range out {
		v := fmt.Sprintf("c%d", i)
		out[i] = entities.CardAction{Type: entities.ActionImBack, Title: strings.ToUpper(v), Value: v}
	}
	return out
}

func TestActionButtons(t *testing.T) {
	tests := []struct {
		name     string
		actions  int
		wantRows []int
	}{
		{name: "none", actions: 0, wantRows: nil},
		{name: "yes no", actions: 2, wantRows: []int{2}},
		{name: "full row", actions: 5, wantRows: []int{5}},
		{name: "wraps", actions: 7, wantRows: []int{5, 2}},
		{name: "capped", actions: 30, wantRows: []int{5, 5, 5, 5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ActionButtons(actions(tt.actions))
			var got []int
			for _, r := range rows {
				row, ok := r.(discordgo.ActionsRow)
				require.True(t, ok)
				got = append(got, len(row.Components))
			}
			assert.Equal(t, tt.wantRows, got)
		})
	}
}

func TestActionButtons_Content(t *testing.T) {
	rows := ActionButtons([]entities.CardAction{
		{Type: entities.ActionImBack, Title: "Yes", Value: "Yes"},
		{Type: entities.ActionImBack, Value: "No"},
	})
	require.Len(t, rows, 1)
	row := rows[0].(discordgo.ActionsRow)
	yes := row.Components[0].(discordgo.Button)
	no := row.Components[1].(discordgo.Button)

	assert.Equal(t, "Yes", yes.Label)
	assert.Equal(t, discordgo.SuccessButton, yes.Style)
	assert.Equal(t, "confirm_choice:Yes", yes.CustomID)
	assert.Equal(t, "No", no.Label)
	assert.Equal(t, discordgo.DangerButton, no.Style)
}

func TestChoiceCustomID(t *testing.T) {
	v, ok := ParseChoiceCustomID(ChoiceCustomID("Oui"))
	assert.True(t, ok)
	assert.Equal(t, "Oui", v)

	_, ok = ParseChoiceCustomID("btn_join")
	assert.False(t, ok)

	long := ChoiceCustomID(strings.Repeat("x", 200))
	assert.Len(t, long, maxCustomID)
}

func TestMessageFromActivity(t *testing.T) {
	a := entities.NewMessage("")
	a.Attachments = []entities.Attachment{{
		ContentType: entities.ContentTypeHeroCard,
		Content:     entities.HeroCard{Text: "Continue?", Buttons: actions(2)},
	}}

	msg := MessageFromActivity(a)
	assert.Empty(t, msg.Content)
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "Continue?", msg.Embeds[0].Description)
	require.Len(t, msg.Components, 1)

	a = entities.NewMessage("Continue?")
	a.SuggestedActions = actions(2)
	data := InteractionData(a)
	assert.Equal(t, "Continue?", data.Content)
	assert.Empty(t, data.Embeds)
	assert.Len(t, data.Components, 1)

	params := WebhookParams(entities.NewMessage("plain"))
	assert.Equal(t, "plain", params.Content)
	assert.Empty(t, params.Components)
}

type mapTranslator map[string]string

func (m mapTranslator) T(_, key string, _ map[string]any) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

func TestDomainErrorMessage(t *testing.T) {
	tr := mapTranslator{
		"error_dialog_not_found": "unknown dialog",
		"error_generic":          "oops",
	}
	assert.Equal(t, "", DomainErrorMessage(tr, "en", nil))
	assert.Equal(t, "unknown dialog", DomainErrorMessage(tr, "en", fmt.Errorf("begin: %w", domain.ErrDialogNotFound)))
	assert.Equal(t, "oops", DomainErrorMessage(tr, "en", fmt.Errorf("boom")))
	assert.Equal(t, "oops", DomainErrorMessage(tr, "en", domain.ErrStateNotFound))
}
