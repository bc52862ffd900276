package sentry

// Issue is the wire representation of a Sentry issue. Only the fields the
// prompt context needs are decoded.
type Issue struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Culprit   string `json:"culprit"`
	Level     string `json:"level"`
	Count     string `json:"count"`
	Permalink string `json:"permalink"`
	LastSeen  string `json:"lastSeen"`
}
