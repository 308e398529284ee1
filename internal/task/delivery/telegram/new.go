package telegram

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"reminder-bot/internal/task"
	pkgLog "reminder-bot/pkg/log"
	pkgTelegram "reminder-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config holds the delivery-level settings of the webhook handler.
type Config struct {
	// AuthorizedUserID is the only Telegram user the bot talks to.
	AuthorizedUserID int64
	// WebhookSecret, when set, must match the secret token header Telegram
	// attaches to every delivery.
	WebhookSecret string
}

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot *pkgTelegram.Bot
	cfg Config

	// seenUpdates de-duplicates update ids: Telegram redelivers a webhook
	// when the previous attempt was not acked fast enough.
	seenUpdates *expirable.LRU[int64, struct{}]
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, cfg Config) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		cfg:         cfg,
		seenUpdates: expirable.NewLRU[int64, struct{}](1024, nil, 10*time.Minute),
	}
}
