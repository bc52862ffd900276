package model

import "time"

// Exchange is one (query, response) pair in a user's conversation history.
// Immutable once created.
type Exchange struct {
	Query     string    // User-submitted text
	Response  string    // Assistant-generated text
	Timestamp time.Time // Creation time
}
