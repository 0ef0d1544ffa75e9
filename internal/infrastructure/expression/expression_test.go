package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confirmbot/internal/domain"
)

func scope(value any) map[string]any {
	return map[string]any{
		"this": map[string]any{"value": value, "turn_count": 2},
		"turn": map[string]any{"locale": "fr-fr", "activity": map[string]any{"channel_id": "discord"}},
		"user": map[string]any{"name": "Ada", "tags": []string{"vip"}},
		"conversation": map[string]any{},
	}
}

func TestParser_Evaluate(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		src   string
		scope map[string]any
		want  any
	}{
		{name: "conditional on boolean", src: `this.value ? "booked" : "skipped"`, scope: scope(false), want: "skipped"},
		{name: "plain reference", src: `this.value`, scope: scope(true), want: true},
		{name: "number becomes float64", src: `this.turn_count + 1`, scope: scope(nil), want: float64(3)},
		{name: "string function", src: `upper(user.name)`, scope: scope(nil), want: "ADA"},
		{name: "format", src: `format("%s/%s", turn.locale, turn.activity.channel_id)`, scope: scope(nil), want: "fr-fr/discord"},
		{name: "list contains", src: `contains(user.tags, "vip")`, scope: scope(nil), want: true},
		{name: "try missing attribute", src: `try(conversation.locale, "en-us")`, scope: scope(nil), want: "en-us"},
		{name: "tuple", src: `["Yep", "Nope"]`, scope: nil, want: []any{"Yep", "Nope"}},
		{name: "object", src: `{ inline_or = " / ", include_numbers = false }`, scope: nil, want: map[string]any{"inline_or": " / ", "include_numbers": false}},
		{name: "null", src: `null`, scope: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := p.Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.src, e.String())
			got, err := e.Evaluate(tt.scope)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_Errors(t *testing.T) {
	p := NewParser()

	_, err := p.Parse(`this.(`)
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)

	e, err := p.Parse(`missing.value`)
	require.NoError(t, err)
	_, err = e.Evaluate(scope(nil))
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)

	e, err = p.Parse(`this.value ? "a" : "b"`)
	require.NoError(t, err)
	_, err = e.Evaluate(scope("not a bool"))
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)
}

func TestProperty(t *testing.T) {
	p := NewParser()

	e, err := Property(p, nil)
	require.NoError(t, err)
	assert.Nil(t, e)

	e, err = Property(p, "auto")
	require.NoError(t, err)
	v, _ := e.Evaluate(nil)
	assert.Equal(t, "auto", v)

	e, err = Property(p, int64(3))
	require.NoError(t, err)
	v, _ = e.Evaluate(nil)
	assert.Equal(t, int64(3), v)

	e, err = Property(p, ` =lower("LIST")`)
	require.NoError(t, err)
	v, err = e.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, "list", v)

	_, err = Property(p, "=(")
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)
}

func TestLiteral(t *testing.T) {
	l := Literal([]any{"a"})
	v, err := l.Evaluate(scope(nil))
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, v)
	assert.Equal(t, "[a]", l.String())
}
