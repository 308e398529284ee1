package telegram

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"reminder-bot/internal/model"
	"reminder-bot/internal/task"
	pkgResponse "reminder-bot/pkg/response"
	pkgTelegram "reminder-bot/pkg/telegram"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// Reply date layouts, precise and all-day.
const (
	replyTimeLayout = "15:04 Mon. 02.01"
	replyDateLayout = "Mon. 02.01"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an ack within a few seconds and
// redelivers otherwise, while creating the task can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cfg.WebhookSecret != "" && c.GetHeader(secretTokenHeader) != h.cfg.WebhookSecret {
		h.l.Warnf(ctx, "telegram handler: webhook secret mismatch from %s", c.ClientIP())
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if update.UpdateID != 0 {
		if _, dup := h.seenUpdates.Get(update.UpdateID); dup {
			pkgResponse.OK(c, map[string]string{"status": "duplicate"})
			return
		}
		h.seenUpdates.Add(update.UpdateID, struct{}{})
	}

	// The bot serves exactly one user; everyone else is silently ignored.
	if update.Message.From == nil || update.Message.From.ID != h.cfg.AuthorizedUserID {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while handling your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 Hi! Send me a task and I'll file it with a due date.\n\n_Examples: \"buy milk next tuesday at 6\", \"call mom in a week\", \"water the plants\"_",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How it works:*\n\nWrite the task followed by when it's due:\n`pay rent next month`\n`standup tomorrow at 9:30`\n`in 2 hours check the oven`\n\nWithout a date phrase the whole message becomes the task title.",
			"Markdown",
		)
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	status, err := h.bot.SendMessageForReply(msg.Chat.ID, "🕓 *Creating task...*", "Markdown")
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send status message: %v", err)
	}

	out, err := h.uc.CreateFromText(ctx, sc, task.CreateFromTextInput{
		RawText:        msg.Text,
		TelegramChatID: msg.Chat.ID,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: CreateFromText failed: %v", err)
		return h.reply(msg.Chat.ID, status, userFacingError(err), "")
	}

	return h.reply(msg.Chat.ID, status, formatCreated(out), "Markdown")
}

// reply edits the status message in place when one was sent, and falls back
// to a fresh message otherwise.
func (h *handler) reply(chatID int64, status *pkgTelegram.Message, text, parseMode string) error {
	if status != nil {
		return h.bot.EditMessageText(chatID, status.MessageID, text, parseMode)
	}
	return h.bot.SendMessageWithMode(chatID, text, parseMode)
}

// formatCreated renders the confirmation reply: the stored title, and when
// a due date resolved, its formatted date plus a relative phrase.
func formatCreated(out task.CreateFromTextOutput) string {
	if !out.HasDue {
		return fmt.Sprintf("`%s`", out.Title)
	}

	layout := replyDateLayout
	if out.Precise {
		layout = replyTimeLayout
	}
	return fmt.Sprintf("`%s`\n📅 %s _(%s)_",
		out.Title, out.DueAt.Format(layout), humanize.Time(out.DueAt))
}
