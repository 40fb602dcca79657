package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"guild-planning/internal/schedule"
	pkgLog "guild-planning/pkg/log"
	pkgTelegram "guild-planning/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Shutdown stops accepting updates and waits for queued commands to finish.
	Shutdown(ctx context.Context) error
}

// Config tunes the Telegram front end.
type Config struct {
	Title           string // board heading
	RateLimitPerMin int    // per chat; 0 disables limiting
}

type handler struct {
	l       pkgLog.Logger
	uc      schedule.UseCase
	bot     *pkgTelegram.Bot
	title   string
	limiter *rateLimiter
	queue   *chatQueue
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc schedule.UseCase, bot *pkgTelegram.Bot, cfg Config) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		title:   cfg.Title,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
		queue:   newChatQueue(),
	}
}
