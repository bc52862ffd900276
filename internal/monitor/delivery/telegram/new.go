package telegram

import (
	"github.com/gin-gonic/gin"

	"project-monitor-bot/internal/monitor"
	pkgLog "project-monitor-bot/pkg/log"
	pkgTelegram "project-monitor-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc monitor.UseCase,
	bot *pkgTelegram.Bot,
	security *SecurityValidator,
	authorizedUsers []int64,
) Handler {
	authorized := make(map[int64]bool, len(authorizedUsers))
	for _, id := range authorizedUsers {
		authorized[id] = true
	}
	return &handler{
		l:          l,
		uc:         uc,
		bot:        bot,
		security:   security,
		authorized: authorized,
	}
}
