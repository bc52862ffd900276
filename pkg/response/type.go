package response

// MessageSuccess is the message body of every successful response.
const MessageSuccess = "Success"

// Resp is the JSON envelope for the service's HTTP surface: health probes
// and webhook acknowledgements. Telegram only cares about the status code,
// so the envelope stays deliberately small.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
