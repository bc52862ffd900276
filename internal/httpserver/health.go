package httpserver

import (
	"github.com/gin-gonic/gin"

	"project-monitor-bot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Project Monitor Bot With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "project-monitor-bot"
)

// healthCheck handles health check requests.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready if server is up.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
