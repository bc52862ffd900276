package middleware

import (
	"project-monitor-bot/pkg/log"
)

// Middleware bundles the HTTP middlewares with their dependencies.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
