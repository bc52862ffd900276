package anthropic

// Config configures the Anthropic client. Zero fields fall back to defaults.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// Message is one turn in a Messages API conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// messagesRequest is the wire format for POST /v1/messages.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// contentBlock is one block in a Messages API response.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// messagesResponse is the wire format of a Messages API response.
type messagesResponse struct {
	Content []contentBlock `json:"content"`
}
