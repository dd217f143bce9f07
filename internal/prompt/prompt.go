// Package prompt builds every prompt EduMate sends to the external model.
// All builders are pure functions of their inputs.
package prompt

import (
	"fmt"
	"strings"

	"github.com/2210030429cse-tech/learningplatform/internal/session"
)

// ChatSystem returns the tutor persona system prompt for the given session
// parameters. The model sees this on every chat turn, so changing level or
// subject mid-session takes effect immediately.
func ChatSystem(level session.Level, subject session.Subject) string {
	return fmt.Sprintf(`You are EduMate AI — a friendly, adaptive tutor.
Student level: %s
Focus subject: %s

Adapt depth, examples, wording and pace to the student's level.
Be encouraging. Use simple analogies when helpful.
If unclear — ask clarifying questions politely.`, level, subject)
}

// QuizSystem is the system prompt for quiz generation.
const QuizSystem = "Respond only with clean JSON array."

// QuizTask returns the quiz-generation task prompt. It demands exactly 5
// questions with exactly 4 options and one answer letter, as a bare JSON
// array with no surrounding prose.
func QuizTask(subject session.Subject, level session.Level) string {
	return fmt.Sprintf(`Create **exactly 5** multiple-choice questions.

Subject: %s
Level: %s

Rules:
- Match difficulty to level (%s)
- Exactly 4 options each (labeled A,B,C,D inside the array)
- Only **one** correct answer
- Return **ONLY** valid JSON array — no extra text, comments or markdown

Format:
[
  {
    "question": "Question text?",
    "options": ["Option text A", "Option text B", "Option text C", "Option text D"],
    "answer": "A"
  }
]`, subject, level, strings.ToLower(string(level)))
}

// AssistantSystem is the system prompt for summary and plan generation.
const AssistantSystem = "You are a supportive educational assistant."

// SummaryInput carries everything the summary and plan builders need.
type SummaryInput struct {
	Level    session.Level
	Subject  session.Subject
	Messages []session.ChatMessage // full history including the greeting
	Quiz     *session.LastQuiz     // most recent submitted quiz, or nil
	Progress ProgressStats
}

// ProgressStats is the aggregate quiz history shown to the model.
type ProgressStats struct {
	TotalQuizzes int
	Accuracy     int // percent over all history
}

// Summary returns the session-summary task prompt.
func Summary(input SummaryInput) string {
	return sessionContext(input) + `
Create a short, warm session summary (4-8 sentences).
- Highlight main topics discussed
- Mention quiz result if any
- Be positive and encouraging
- End with a motivational note
- Simple language, no code/JSON/markdown
`
}

// RevisionPlan returns the revision-plan task prompt.
func RevisionPlan(input SummaryInput) string {
	return sessionContext(input) + `
Create a short, actionable revision plan / next steps (4-7 sentences or bullet points).
- Suggest 2-4 topics or concepts to revise based on chat & quiz
- Recommend practice or questions to ask next time
- Keep it motivating and realistic
- Use simple language, no code/JSON/markdown
`
}

// sessionContext builds the shared preamble: persona, session parameters,
// quiz result, aggregate progress, and the truncated conversation excerpt.
func sessionContext(input SummaryInput) string {
	var b strings.Builder

	b.WriteString("You are EduMate AI — friendly and encouraging tutor.\n\n")
	b.WriteString("Session info:\n")
	fmt.Fprintf(&b, "- Level: %s\n", input.Level)
	fmt.Fprintf(&b, "- Subject: %s\n", input.Subject)

	if q := input.Quiz; q != nil && q.Total > 0 {
		fmt.Fprintf(&b, "Recent Quiz (%s, %s): Score %d/%d (%d%%)\n",
			q.Subject, q.Level, q.Score, q.Total, percent(q.Score, q.Total))
	}
	fmt.Fprintf(&b, "Overall: %d quizzes, %d%% accuracy\n",
		input.Progress.TotalQuizzes, input.Progress.Accuracy)

	b.WriteString("\nConversation:\n")
	b.WriteString(Transcript(input.Messages))
	b.WriteString("\n\n")

	return b.String()
}

func percent(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(float64(num)/float64(den)*100 + 0.5)
}
