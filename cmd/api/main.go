package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guild-planning/config"
	"guild-planning/config/postgre"
	_ "guild-planning/docs" // Swagger docs
	"guild-planning/internal/httpserver"
	"guild-planning/internal/keepalive"
	"guild-planning/internal/schedule"
	"guild-planning/internal/schedule/cache"
	tgDelivery "guild-planning/internal/schedule/delivery/telegram"
	"guild-planning/internal/schedule/mirror"
	scheduleRepo "guild-planning/internal/schedule/repository/postgre"
	"guild-planning/internal/schedule/usecase"
	"guild-planning/pkg/gcalendar"
	"guild-planning/pkg/log"
	"guild-planning/pkg/telegram"
	"guild-planning/pkg/weekcal"
)

// @title       Guild Planning API
// @description Weekly community planning bot: Telegram commands, read-only schedule API and iCalendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Guild Planning...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer func() {
		if err := postgre.Disconnect(context.Background(), db); err != nil {
			logger.Warnf(ctx, "Failed to close PostgreSQL: %v", err)
		}
	}()

	calendar, err := weekcal.NewCalendar(cfg.Schedule.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid schedule timezone %q: %v", cfg.Schedule.Timezone, err)
	}

	// 4. Schedule domain
	var calendarMirror schedule.Mirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar mirror not available (optional): %v", gErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarMirror = mirror.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "✅ Google Calendar mirror initialized")
		}
	}

	repo := scheduleRepo.New(db, logger)
	scheduleUC := usecase.New(logger, repo, cache.New(), calendar, calendarMirror)

	// The bot must not answer with an empty planning, so a failed load is fatal.
	if _, err := scheduleUC.Load(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to load schedule: %v", err)
	}

	// 5. Telegram front end
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, scheduleUC, bot, tgDelivery.Config{
			Title:           cfg.Schedule.Title,
			RateLimitPerMin: cfg.Telegram.RateLimitPerMin,
		})
		registerWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. Keep-alive
	if cfg.KeepAlive.Enabled {
		job, kErr := keepalive.New(logger, keepalive.Config{Spec: cfg.KeepAlive.Spec, URL: cfg.KeepAlive.URL})
		if kErr != nil {
			logger.Warnf(ctx, "Keep-alive disabled: %v", kErr)
		} else {
			job.Start(ctx)
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				job.Stop(stopCtx)
			}()
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScheduleUseCase: scheduleUC,
		Title:           cfg.Schedule.Title,
		Location:        calendar.Location(),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	// Let accepted commands finish their store write and reply.
	if telegramHandler != nil {
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := telegramHandler.Shutdown(drainCtx); err != nil {
			logger.Warnf(ctx, "Telegram commands still running at exit: %v", err)
		}
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this process. Without a configured URL it tries a local ngrok tunnel.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, webhookURL string) {
	if webhookURL == "" {
		tunnel, err := detectTunnelURL(ctx, "http://ngrok:4040")
		if err != nil {
			logger.Warnf(ctx, "No webhook URL configured and no tunnel found: %v", err)
			return
		}
		webhookURL = tunnel + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected tunnel URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
