package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"reminder-bot/config"
	"reminder-bot/internal/digest"
	"reminder-bot/internal/httpserver"
	"reminder-bot/internal/middleware"
	tgDelivery "reminder-bot/internal/task/delivery/telegram"
	ticktickRepo "reminder-bot/internal/task/repository/ticktick"
	"reminder-bot/internal/task/usecase"
	"reminder-bot/pkg/datemath"
	"reminder-bot/pkg/log"
	"reminder-bot/pkg/telegram"
)

const webhookRateLimitPerMin = 120

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Reminder Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.Telegram.BotToken == "" || cfg.TickTick.AccessToken == "" || cfg.TickTick.ProjectID == "" {
		logger.Error(ctx, "TELEGRAM_BOT_TOKEN, TICKTICK_ACCESS_TOKEN, and TICKTICK_PROJECT_ID are required")
		return
	}

	authorizedUserID, err := strconv.ParseInt(cfg.Telegram.AuthorizedUserID, 10, 64)
	if err != nil {
		logger.Errorf(ctx, "Invalid telegram user id %q: %v", cfg.Telegram.AuthorizedUserID, err)
		return
	}

	// 3. DateMath parser
	timezone := cfg.Parser.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser(timezone)
	}
	location, _ := time.LoadLocation(timezone)

	// 4. Telegram Bot client
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

	// 5. TickTick repository
	ticktickClient := ticktickRepo.NewClient(cfg.TickTick.BaseURL, cfg.TickTick.AccessToken)
	taskRepo := ticktickRepo.New(ticktickClient, cfg.TickTick.ProjectID, location, logger)

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, dateMathParser)

	// 7. Telegram Delivery handler
	telegramHandler := tgDelivery.New(logger, taskUC, telegramBot, tgDelivery.Config{
		AuthorizedUserID: authorizedUserID,
		WebhookSecret:    cfg.Telegram.WebhookSecret,
	})

	// 8. Register webhook
	if cfg.Telegram.WebhookURL != "" {
		if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
		}
	}

	// 9. Daily digest scheduler
	if cfg.Digest.Enabled {
		digestScheduler := digest.New(logger, taskUC, telegramBot, digest.Config{
			ChatID:     authorizedUserID,
			Cron:       cfg.Digest.Cron,
			RunOnStart: cfg.Digest.RunOnStart,
		})
		if dgErr := digestScheduler.Start(ctx); dgErr != nil {
			logger.Errorf(ctx, "Failed to start digest scheduler: %v", dgErr)
			return
		}
		defer digestScheduler.Stop()
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, webhookRateLimitPerMin),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
