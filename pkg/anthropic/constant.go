package anthropic

// Defaults for the Anthropic Messages API client.
const (
	DefaultBaseURL   = "https://api.anthropic.com"
	DefaultModel     = "claude-3-sonnet-20240229"
	DefaultMaxTokens = 1024
	APIVersion       = "2023-06-01"
)
