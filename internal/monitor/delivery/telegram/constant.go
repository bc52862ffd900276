package telegram

// User-facing reply texts.
const (
	MsgWelcome = "👋 Welcome to the Project Monitor Bot!\n\n" +
		"I can help you monitor your projects and check their status. Here's what I can do:\n" +
		"- Check website accessibility\n" +
		"- Get latest Sentry issues from monitored projects\n" +
		"- Answer questions about your projects\n\n" +
		"Just ask me anything about your projects!"

	MsgHelp = "*Commands:*\n\n" +
		"/status — probe the monitored websites\n" +
		"/issues — latest Sentry issues\n" +
		"/reset — forget our conversation so far\n\n" +
		"Or just ask a question in plain language, e.g. `is the shop still throwing 500s?`"

	MsgUnauthorized = "Sorry, you are not authorized to use this bot."

	MsgHistoryCleared = "🧹 Conversation history cleared."

	MsgRateLimited = "⏳ Slow down a little — try again in a few seconds."

	MsgGenericError = "I apologize, but I encountered an error while processing your request. " +
		"Please try again later."
)
