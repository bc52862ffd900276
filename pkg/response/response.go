package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data. Used for health probes and for acknowledging
// webhook updates — Telegram retries any non-200, so every accepted,
// ignored, or rate-limited update is answered with OK.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error sends 400 with the error message. Telegram stops retrying an
// update it could not even serialize, which is exactly what we want for
// malformed webhook bodies.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// Unauthorized sends 401. Returned when the webhook secret token check fails.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}
