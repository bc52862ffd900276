package model

// WebsiteStatus is the result of probing a single monitored website.
type WebsiteStatus struct {
	URL        string // Probed URL
	StatusCode int    // HTTP status code (0 when the request failed)
	Accessible bool   // True when the site answered 200
	Error      string // Transport error description (empty on success)
}

// SentryIssue is a single issue from the Sentry issues feed.
type SentryIssue struct {
	ID        string // Sentry issue ID
	Title     string // Short issue title
	Culprit   string // Offending function/module reported by Sentry
	Project   string // Project slug the issue belongs to
	Level     string // error, warning, info, ...
	Count     string // Event count as reported by the API
	Permalink string // Deep link to the issue in the Sentry UI
	LastSeen  string // RFC3339 last-seen time string from the Sentry API
}
