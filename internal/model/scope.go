package model

// Scope carries the identity of the user a request is executed for.
type Scope struct {
	UserID   int64  // Telegram user ID
	Username string // Telegram username (may be empty)
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
