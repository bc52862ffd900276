package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-monitor-bot/config"
	"project-monitor-bot/internal/cache"
	"project-monitor-bot/internal/httpserver"
	"project-monitor-bot/internal/model"
	tgDelivery "project-monitor-bot/internal/monitor/delivery/telegram"
	"project-monitor-bot/internal/monitor/repository"
	sentryRepo "project-monitor-bot/internal/monitor/repository/sentry"
	"project-monitor-bot/internal/monitor/repository/webprobe"
	"project-monitor-bot/internal/monitor/usecase"
	"project-monitor-bot/internal/session"
	"project-monitor-bot/pkg/anthropic"
	"project-monitor-bot/pkg/log"
	"project-monitor-bot/pkg/telegram"
)

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

	logger.Info(ctx, "Starting Project Monitor Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Monitored websites: %d, Sentry projects: %d", len(cfg.Monitor.Websites), len(cfg.Sentry.Projects))

	var telegramHandler tgDelivery.Handler

	if cfg.Telegram.BotToken != "" && cfg.Anthropic.APIKey != "" {
		logger.Info(ctx, "Initializing monitor components...")

		// Telegram Bot client
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

		// Anthropic LLM client
		llmClient := anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.Anthropic.APIKey,
			BaseURL:   cfg.Anthropic.BaseURL,
			Model:     cfg.Anthropic.Model,
			MaxTokens: cfg.Anthropic.MaxTokens,
		})

		// Sentry repository (optional — status probes still work without it)
		var issueRepo repository.IssueRepository
		if cfg.Sentry.Token != "" && cfg.Sentry.Org != "" {
			sentryClient := sentryRepo.NewClient(cfg.Sentry.Domain, cfg.Sentry.Token)
			issueRepo = sentryRepo.New(sentryClient, cfg.Sentry.Org, cfg.Sentry.Projects, logger)
		} else {
			logger.Warn(ctx, "Sentry token or org missing, issue monitoring disabled")
		}

		// Website probe repository
		probeTimeout := time.Duration(cfg.Monitor.ProbeTimeoutSec) * time.Second
		statusRepo := webprobe.New(cfg.Monitor.Websites, probeTimeout, logger)

		// State layer: expiring caches and per-user conversation history
		cacheTTL := time.Duration(cfg.Monitor.CacheTTLMinutes) * time.Minute
		issueCache, err := cache.New[[]model.SentryIssue](cacheTTL)
		if err != nil {
			logger.Error(ctx, "Failed to create issue cache: ", err)
			return
		}
		statusCache, err := cache.New[[]model.WebsiteStatus](cacheTTL)
		if err != nil {
			logger.Error(ctx, "Failed to create status cache: ", err)
			return
		}

		expiryWindow := time.Duration(cfg.Monitor.HistoryExpiryHours * float64(time.Hour))
		history, err := session.New(cfg.Monitor.HistoryMaxMessages, expiryWindow)
		if err != nil {
			logger.Error(ctx, "Failed to create session history: ", err)
			return
		}

		// Monitor UseCase
		monitorUC := usecase.New(logger, llmClient, issueRepo, statusRepo, issueCache, statusCache, history, cfg.Sentry.Projects)

		// Telegram Delivery handler
		security := tgDelivery.NewSecurityValidator(tgDelivery.SecurityConfig{
			SecretToken:     cfg.Telegram.SecretToken,
			RateLimitPerMin: cfg.Telegram.RateLimitPerMin,
		})
		telegramHandler = tgDelivery.New(logger, monitorUC, telegramBot, security, cfg.Telegram.AuthorizedUsers)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}

		logger.Info(ctx, "Monitor components initialized successfully")
	} else {
		logger.Warn(ctx, "Bot disabled: TELEGRAM_BOT_TOKEN or ANTHROPIC_API_KEY is missing")
	}

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
