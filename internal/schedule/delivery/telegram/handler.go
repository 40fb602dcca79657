package telegram

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"guild-planning/internal/model"
	"guild-planning/internal/schedule"
	pkgLog "guild-planning/pkg/log"
	pkgResponse "guild-planning/pkg/response"
	pkgTelegram "guild-planning/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 right away; commands of a chat then run one at a time in arrival order.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, http.StatusBadRequest, err)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	err := h.queue.push(msg.Chat.ID, func() {
		// Detach from the request context, which is cancelled once we respond.
		bgCtx := pkgLog.WithTraceID(context.Background(), "")
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: dropped update %d: %v", update.UpdateID, err)
		pkgResponse.Error(c, http.StatusServiceUnavailable, err)
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// Shutdown waits for accepted commands, bounded by ctx.
func (h *handler) Shutdown(ctx context.Context) error {
	return h.queue.close(ctx)
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	cmd, ok := parseCommand(msg.Text)
	if !ok || cmd.kind == cmdUnknown {
		return nil
	}
	chatID := msg.Chat.ID

	if err := h.limiter.Allow(chatID); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		return h.bot.SendMessage(chatID, msgRateLimited)
	}

	if cmd.requiresModerator() {
		allowed, err := h.isModerator(msg)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: getChatMember failed: %v", err)
			return h.bot.SendMessage(chatID, msgPermissionErr)
		}
		if !allowed {
			return h.bot.SendMessage(chatID, msgNoPermission)
		}
	}

	sc := scopeOf(msg)
	h.l.Infof(ctx, "telegram handler: /%s from %d in chat %d", cmd.name, sc.UserID, sc.Community)

	switch cmd.kind {
	case cmdHelp:
		return h.reply(chatID, helpText)
	case cmdView:
		return h.handleView(ctx, sc)
	case cmdAdd:
		return h.handleAdd(ctx, sc, cmd.args)
	case cmdClear:
		return h.handleClear(ctx, sc, cmd.args)
	case cmdStatus:
		return h.handleStatus(ctx, sc)
	case cmdGreet:
		return h.reply(chatID, renderGreeting(senderName(msg)))
	}
	return nil
}

func (h *handler) handleView(ctx context.Context, sc model.Scope) error {
	out, err := h.uc.View(ctx, sc)
	if err != nil {
		return h.replyError(ctx, sc.Community, err)
	}
	return h.reply(sc.Community, renderBoard(h.title, out))
}

func (h *handler) handleAdd(ctx context.Context, sc model.Scope, args string) error {
	day, text := cutSpace(args)
	if day == "" || text == "" {
		return h.reply(sc.Community, msgAddUsage)
	}

	out, err := h.uc.Add(ctx, sc, schedule.AddInput{Day: day, Text: text})
	if err != nil {
		return h.replyError(ctx, sc.Community, err)
	}
	return h.reply(sc.Community, renderAdded(out))
}

func (h *handler) handleClear(ctx context.Context, sc model.Scope, args string) error {
	day, _ := cutSpace(args)

	out, err := h.uc.Clear(ctx, sc, schedule.ClearInput{Day: day})
	if err != nil {
		return h.replyError(ctx, sc.Community, err)
	}
	return h.reply(sc.Community, renderCleared(out))
}

func (h *handler) handleStatus(ctx context.Context, sc model.Scope) error {
	out, err := h.uc.Status(ctx, sc)
	if err != nil {
		return h.replyError(ctx, sc.Community, err)
	}
	return h.reply(sc.Community, renderStatus(out))
}

// isModerator gates mutating commands. Private chats have no moderators, so everyone passes.
func (h *handler) isModerator(msg *pkgTelegram.Message) (bool, error) {
	if msg.Chat.Type == pkgTelegram.ChatTypePrivate {
		return true, nil
	}
	if msg.From == nil {
		return false, nil
	}
	member, err := h.bot.GetChatMember(msg.Chat.ID, msg.From.ID)
	if err != nil {
		return false, err
	}
	return member.IsModerator(), nil
}

func (h *handler) reply(chatID int64, text string) error {
	return h.bot.SendMessageWithMode(chatID, text, parseModeHTML)
}

func (h *handler) replyError(ctx context.Context, chatID int64, err error) error {
	h.l.Warnf(ctx, "telegram handler: command failed: %v", err)
	return h.reply(chatID, errorMessage(err))
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{Community: msg.Chat.ID}
	if msg.From != nil {
		sc.UserID = msg.From.ID
		sc.Username = msg.From.Username
	}
	return sc
}

func senderName(msg *pkgTelegram.Message) string {
	if msg.From == nil {
		return ""
	}
	if msg.From.FirstName != "" {
		return msg.From.FirstName
	}
	return msg.From.Username
}
