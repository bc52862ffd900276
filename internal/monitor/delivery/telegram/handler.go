package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"project-monitor-bot/internal/model"
	"project-monitor-bot/internal/monitor"
	pkgLog "project-monitor-bot/pkg/log"
	pkgResponse "project-monitor-bot/pkg/response"
	pkgTelegram "project-monitor-bot/pkg/telegram"
)

type handler struct {
	l          pkgLog.Logger
	uc         monitor.UseCase
	bot        *pkgTelegram.Bot
	security   *SecurityValidator
	authorized map[int64]bool
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: the full pipeline (probes + Sentry + LLM) can take
// longer than Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateSecretToken(c.GetHeader("X-Telegram-Bot-Api-Secret-Token")); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
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
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	if err := h.security.CheckRateLimit(msg.Chat.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		_ = h.bot.SendMessage(msg.Chat.ID, MsgRateLimited)
		pkgResponse.OK(c, map[string]string{"status": "rate_limited"})
		return
	}

	// Process in goroutine, return 200 immediately to Telegram.
	go func() {
		// Detach from the HTTP request context, which is cancelled after the response.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(msg.Chat.ID, MsgGenericError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	if !h.authorized[msg.From.ID] {
		h.l.Warnf(ctx, "telegram handler: %v: user %d", ErrUnauthorizedUser, msg.From.ID)
		return h.bot.SendMessage(msg.Chat.ID, MsgUnauthorized)
	}

	sc := model.Scope{
		UserID:   msg.From.ID,
		Username: msg.From.Username,
	}

	// ---- Built-in commands ----
	switch parseCommand(msg.Text) {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID, MsgWelcome)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, MsgHelp, "Markdown")
	case "/reset":
		h.uc.ResetHistory(ctx, sc)
		return h.bot.SendMessage(msg.Chat.ID, MsgHistoryCleared)
	case "/status":
		return h.replyStatus(ctx, msg.Chat.ID)
	case "/issues":
		return h.replyIssues(ctx, msg.Chat.ID)
	}

	output, err := h.uc.AnswerQuery(ctx, sc, monitor.QueryInput{Query: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: AnswerQuery failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, MsgGenericError)
	}

	return h.bot.SendMessageWithMode(msg.Chat.ID, output.Answer, "Markdown")
}

// parseCommand extracts the command from a message's first token, dropping
// the @BotName suffix Telegram appends in group chats. Returns "" for plain
// text so it never collides with the command switch.
func parseCommand(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if at := strings.Index(cmd, "@"); at != -1 {
		cmd = cmd[:at]
	}
	return cmd
}

// replyStatus renders the /status command.
func (h *handler) replyStatus(ctx context.Context, chatID int64) error {
	output, err := h.uc.Status(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Status failed: %v", err)
		return h.bot.SendMessage(chatID, MsgGenericError)
	}

	var b strings.Builder
	b.WriteString("*Website Status*\n\n")
	for _, st := range output.Statuses {
		if st.Accessible {
			fmt.Fprintf(&b, "✅ %s (HTTP %d)\n", st.URL, st.StatusCode)
		} else {
			fmt.Fprintf(&b, "❌ %s", st.URL)
			if st.Error != "" {
				fmt.Fprintf(&b, " — %s", st.Error)
			} else {
				fmt.Fprintf(&b, " (HTTP %d)", st.StatusCode)
			}
			b.WriteString("\n")
		}
	}
	if len(output.Statuses) == 0 {
		b.WriteString("No websites configured.")
	}

	return h.bot.SendMessageWithMode(chatID, b.String(), "Markdown")
}

// replyIssues renders the /issues command.
func (h *handler) replyIssues(ctx context.Context, chatID int64) error {
	output, err := h.uc.Issues(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Issues failed: %v", err)
		return h.bot.SendMessage(chatID, MsgGenericError)
	}

	if output.Count == 0 {
		return h.bot.SendMessage(chatID, "🎉 No open Sentry issues.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Latest Sentry Issues* (%d total)\n\n", output.Count)
	for i, issue := range output.Issues {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "%d. [%s] *%s*\n   project: %s", i+1, issue.Level, issue.Title, issue.Project)
		if issue.Culprit != "" {
			fmt.Fprintf(&b, ", culprit: %s", issue.Culprit)
		}
		b.WriteString("\n")
	}

	return h.bot.SendMessageWithMode(chatID, b.String(), "Markdown")
}
