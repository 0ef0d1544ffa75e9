package choices

// Channel IDs with known capabilities.
const (
	ChannelDiscord    = "discord"
	ChannelConsole    = "console"
	ChannelEmulator   = "emulator"
	ChannelWebchat    = "webchat"
	ChannelDirectLine = "directline"
	ChannelFacebook   = "facebook"
	ChannelSkype      = "skype"
	ChannelTeams      = "msteams"
	ChannelSlack      = "slack"
	ChannelTelegram   = "telegram"
	ChannelLine       = "line"
)

// defaultMaxActionTitleLength is the longest button title most channels
// render without truncation.
const defaultMaxActionTitleLength = 20

type capabilities struct {
	suggestedActions int
	cardActions      int
}

var channels = map[string]capabilities{
	ChannelDiscord:    {suggestedActions: 25, cardActions: 25},
	ChannelEmulator:   {suggestedActions: 100, cardActions: 100},
	ChannelWebchat:    {suggestedActions: 100, cardActions: 100},
	ChannelDirectLine: {suggestedActions: 100, cardActions: 100},
	ChannelTelegram:   {suggestedActions: 100, cardActions: 100},
	ChannelFacebook:   {suggestedActions: 10, cardActions: 3},
	ChannelSkype:      {suggestedActions: 10, cardActions: 3},
	ChannelLine:       {suggestedActions: 13, cardActions: 99},
	ChannelTeams:      {cardActions: 3},
	ChannelSlack:      {cardActions: 100},
}

// SupportsSuggestedActions reports whether channelID can show n suggested actions.
func SupportsSuggestedActions(channelID string, n int) bool {
	return n <= channels[channelID].suggestedActions
}

// SupportsCardActions reports whether channelID can show n card buttons.
func SupportsCardActions(channelID string, n int) bool {
	return n <= channels[channelID].cardActions
}

func MaxActionTitleLength(string) int {
	return defaultMaxActionTitleLength
}
