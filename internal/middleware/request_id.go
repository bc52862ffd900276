package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"project-monitor-bot/pkg/log"
)

// HeaderRequestID is the response header carrying the request ID.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns every request a UUID, stores it on the request context
// for the logger, and echoes it in the response header.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), log.RequestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, reqID)

		c.Next()
	}
}
