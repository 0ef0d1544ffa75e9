package application

import "confirmbot/internal/domain/entities"

// scopeFor builds the memory view that expressions and prompt templates see.
//
//	this.value, this.turn_count   the active input slot
//	turn.activity.*, turn.locale  the incoming activity
//	user.*, conversation.*        persisted memory
func scopeFor(turn *entities.Turn) map[string]any {
	this := map[string]any{"value": nil, "turn_count": 0}
	if d := turn.State.Active; d != nil {
		if v, ok := d.Input(); ok {
			this["value"] = v
		}
		this["turn_count"] = d.TurnCount
	}

	activity := map[string]any{}
	locale := ""
	if a := turn.Activity; a != nil {
		activity["type"] = a.Type
		activity["text"] = a.Text
		activity["locale"] = a.Locale
		activity["channel_id"] = a.ChannelID
		activity["value"] = a.Value
		locale = a.Locale
	}

	return map[string]any{
		"this":                     this,
		"turn":                     map[string]any{"activity": activity, "locale": locale},
		entities.ScopeUser:         turn.State.Scope(entities.ScopeUser),
		entities.ScopeConversation: turn.State.Scope(entities.ScopeConversation),
	}
}
