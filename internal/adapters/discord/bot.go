package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"confirmbot/internal/config"
	"confirmbot/internal/ports/input"
	"confirmbot/internal/ports/output"
	pkgdiscord "confirmbot/pkg/discord"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	logger  *zap.Logger
}

// NewBot creates a Bot on top of the dialog use case.
func NewBot(cfg *config.Config, dialogs input.DialogUseCase, translator output.T, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsDirectMessageReactions |
		discordgo.IntentsMessageContent

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(dialogs, translator, logger),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handler.HandleMessage)
	b.session.AddHandler(b.handler.HandleReactionAdd)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandConfirm:
			b.handler.HandleConfirmCommand(s, i)
		case commandCancel:
			b.handler.HandleCancelCommand(s, i)
		}
	case discordgo.InteractionMessageComponent:
		if value, ok := pkgdiscord.ParseChoiceCustomID(i.MessageComponentData().CustomID); ok {
			b.handler.HandleChoiceButton(s, i, value)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range b.handler.Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			b.logger.Warn("register command failed", zap.String("command", cmd.Name), zap.Error(err))
		}
	}

	b.logger.Info("bot online", zap.String("user", b.session.State.User.Username))
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	b.logger.Info("shutting down")
	return nil
}
