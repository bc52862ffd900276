package telegram

import "errors"

// Delivery-level errors for the Telegram webhook handler.
var (
	ErrInvalidSecretToken = errors.New("invalid webhook secret token")
	ErrUnauthorizedUser   = errors.New("user is not authorized")
)
