package usecase

import (
	"fmt"
	"strings"

	"project-monitor-bot/internal/model"
)

// SystemPromptMonitor steers the LLM toward concise monitoring answers.
const SystemPromptMonitor = `You are a helpful assistant specializing in monitoring project status and issues. ` +
	`Analyze the provided website statuses and Sentry issues to give concise, relevant answers. ` +
	`Format the reply so it renders correctly with Telegram Markdown parsing and use appropriate emojis. ` +
	`Consider the conversation history to maintain context. ` +
	`Make the culprit or root cause obvious, for example a 500 response in a subclient module.`

// buildContextMessage assembles the prompt sent to the LLM: the query, the
// current status signals, and the user's recent exchanges.
func buildContextMessage(query string, statuses []model.WebsiteStatus, issues []model.SentryIssue, projects []string, exchanges []model.Exchange) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User Query: %s\n\n", query)

	b.WriteString("Current Status:\n")
	if len(statuses) == 0 {
		b.WriteString("Website Status: unavailable\n")
	} else {
		b.WriteString("Website Status:\n")
		for _, st := range statuses {
			if st.Accessible {
				fmt.Fprintf(&b, "- %s: up (HTTP %d)\n", st.URL, st.StatusCode)
			} else if st.Error != "" {
				fmt.Fprintf(&b, "- %s: down (%s)\n", st.URL, st.Error)
			} else {
				fmt.Fprintf(&b, "- %s: down (HTTP %d)\n", st.URL, st.StatusCode)
			}
		}
	}

	if len(issues) == 0 {
		b.WriteString("Latest Sentry Issues: No issues found\n")
	} else {
		b.WriteString("Latest Sentry Issues:\n")
		for i, issue := range issues {
			if i >= MaxIssuesInContext {
				break
			}
			fmt.Fprintf(&b, "- [%s] %s (project: %s, culprit: %s, count: %s, last seen: %s)\n",
				issue.Level, issue.Title, issue.Project, issue.Culprit, issue.Count, issue.LastSeen)
		}
	}

	fmt.Fprintf(&b, "\nProjects being monitored: %s\n", strings.Join(projects, ", "))

	if len(exchanges) > 0 {
		b.WriteString("\nPrevious Conversation:\n")
		for _, ex := range exchanges {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n\n", ex.Query, ex.Response)
		}
	}

	return b.String()
}
