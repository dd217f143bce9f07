package prompt

import (
	"strings"

	"github.com/2210030429cse-tech/learningplatform/internal/session"
)

const (
	// MessageCharLimit caps a single message excerpt in the transcript.
	MessageCharLimit = 280

	// TranscriptCharLimit caps the whole conversation excerpt.
	TranscriptCharLimit = 1800

	// Ellipsis marks a truncated message.
	Ellipsis = "..."

	// TruncationMark marks a truncated transcript.
	TruncationMark = "[...]"
)

// Transcript renders the conversation as "Tutor:"/"You:" lines for summary
// and plan prompts. The greeting is skipped. Each message is capped at
// MessageCharLimit characters with a visible ellipsis, and the whole excerpt
// at TranscriptCharLimit with a visible truncation mark. Truncation operates
// on whole lines, so a role label is never split: a line is either included
// (possibly with its own ellipsis) or dropped entirely.
func Transcript(messages []session.ChatMessage) string {
	if len(messages) <= 1 {
		return ""
	}

	var lines []string
	for _, m := range messages[1:] {
		label := "You"
		if m.Role == session.RoleAssistant {
			label = "Tutor"
		}
		lines = append(lines, label+": "+clip(m.Text, MessageCharLimit))
	}

	var b strings.Builder
	truncated := false
	for i, line := range lines {
		add := len(line)
		if i > 0 {
			add++ // newline
		}
		if b.Len()+add > TranscriptCharLimit {
			truncated = true
			break
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}

	if truncated {
		b.WriteString("\n" + TruncationMark)
	}
	return b.String()
}

// clip shortens s to at most limit characters, appending Ellipsis when cut.
// Operates on runes so multi-byte characters are never split.
func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + Ellipsis
}
