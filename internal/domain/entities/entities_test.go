package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confirmbot/internal/domain"
)

func TestParseListStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    ListStyle
		wantErr bool
	}{
		{in: "auto", want: ListStyleAuto},
		{in: "Inline", want: ListStyleInline},
		{in: " suggestedaction ", want: ListStyleSuggestedAction},
		{in: "heroCard", want: ListStyleHeroCard},
		{in: "none", want: ListStyleNone},
		{in: "list", want: ListStyleList},
		{in: "carousel", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseListStyle(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownListStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecognition(t *testing.T) {
	var zero Recognition
	assert.False(t, zero.Valid())
	assert.False(t, Unrecognized().Valid())
	assert.Nil(t, Unrecognized().Value())

	r := Recognized(false)
	assert.True(t, r.Valid())
	assert.Equal(t, false, r.Value())
	assert.Equal(t, "invalid", InputInvalid.String())
}

func TestConversationState_Paths(t *testing.T) {
	s := NewConversationState("c1")

	_, ok := s.GetPath("user.confirmed")
	assert.False(t, ok)

	s.SetPath("user.confirmed", true)
	s.SetPath("user.profile.name", "ada")
	v, ok := s.GetPath("user.confirmed")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	v, ok = s.GetPath("user.profile.name")
	assert.True(t, ok)
	assert.Equal(t, "ada", v)
	assert.Equal(t, true, s.Scope(ScopeUser)["confirmed"])

	s.SetPath("user.confirmed.deeper", 1)
	v, _ = s.GetPath("user.confirmed.deeper")
	assert.Equal(t, 1, v)

	_, ok = s.GetPath("conversation.locale")
	assert.False(t, ok)
}

func TestDialogState_Input(t *testing.T) {
	var nilState *DialogState
	_, ok := nilState.Input()
	assert.False(t, ok)

	d := &DialogState{}
	_, ok = d.Input()
	assert.False(t, ok)

	d.SetInput(nil)
	v, ok := d.Input()
	assert.True(t, ok)
	assert.Nil(t, v)

	d.ClearInput()
	_, ok = d.Input()
	assert.False(t, ok)
}

func TestActivity_Clone(t *testing.T) {
	a := NewMessage("hi")
	a.SuggestedActions = []CardAction{{Type: ActionImBack, Title: "Yes", Value: "Yes"}}

	c := a.Clone()
	c.Text = "changed"
	c.SuggestedActions[0].Title = "No"
	c.SuggestedActions = append(c.SuggestedActions, CardAction{Title: "Maybe"})

	assert.Equal(t, "hi", a.Text)
	assert.Equal(t, "Yes", a.SuggestedActions[0].Title)
	assert.Len(t, a.SuggestedActions, 1)
	assert.Nil(t, (*Activity)(nil).Clone())
}

func TestChoice_Title(t *testing.T) {
	choices := ToChoices("Yes", "No")
	require.Len(t, choices, 2)
	assert.Equal(t, "Yes", choices[0].Title())

	c := Choice{Value: "y", Action: &CardAction{Title: "Yes please"}}
	assert.Equal(t, "Yes please", c.Title())
}
