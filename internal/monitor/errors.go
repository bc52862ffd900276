package monitor

import "errors"

// Domain-specific errors for the monitor package.
var (
	ErrEmptyQuery = errors.New("query text is empty")
	ErrNoResponse = errors.New("llm returned no response content")
)
