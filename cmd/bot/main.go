package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"confirmbot/internal/adapters/discord"
	"confirmbot/internal/application"
	"confirmbot/internal/config"
	"confirmbot/internal/infrastructure/database"
	"confirmbot/internal/infrastructure/dialogs"
	"confirmbot/internal/infrastructure/expression"
	"confirmbot/internal/infrastructure/i18n"
	"confirmbot/internal/infrastructure/memory"
	"confirmbot/internal/infrastructure/recognizers"
	"confirmbot/internal/ports/output"
)

func main() {
	bootLogger, _ := zap.NewProduction()

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatal("invalid configuration", zap.Error(err))
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := logCfg.Build()
	if err != nil {
		bootLogger.Fatal("build logger", zap.Error(err))
	}
	defer logger.Sync()

	ctx := context.Background()
	var repo output.ConversationStateRepository
	if cfg.UsesDatabase() {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("database init failed", zap.Error(err))
		}
		defer pool.Close()
		repo = database.NewStateRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, conversation state is kept in memory")
		repo = memory.NewStateRepository()
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	defs, err := dialogs.LoadFile(cfg.DialogsPath, expression.NewParser())
	if err != nil {
		logger.Fatal("load dialogs failed", zap.String("path", cfg.DialogsPath), zap.Error(err))
	}

	booleans := recognizers.NewBooleanRecognizer()
	choices := recognizers.NewChoiceRecognizer()
	service := application.NewDialogService(repo, logger)
	for _, def := range defs {
		if def.Confirm.DefaultLocale == nil {
			def.Confirm.DefaultLocale = expression.Literal(cfg.DefaultLocale)
		}
		confirm := application.NewConfirmInput(def.Confirm, booleans, choices)
		if err := service.Register(application.NewInputDialog(def.Input, confirm, translator)); err != nil {
			logger.Fatal("register dialog failed", zap.Error(err))
		}
	}
	logger.Info("dialogs loaded", zap.Strings("dialogs", service.Dialogs()))

	bot, err := discord.NewBot(cfg, service, translator, logger)
	if err != nil {
		logger.Fatal("discord init failed", zap.Error(err))
	}
	if err := bot.Start(); err != nil {
		logger.Error("bot stopped", zap.Error(err))
		os.Exit(1)
	}
}
