package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Level is the student's self-declared proficiency.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Levels lists all levels in display order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Next cycles to the following level, wrapping around.
func (l Level) Next() Level {
	for i, v := range Levels {
		if v == l {
			return Levels[(i+1)%len(Levels)]
		}
	}
	return LevelBeginner
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	for _, v := range Levels {
		if v == l {
			return true
		}
	}
	return false
}

// Subject is the focus subject for the session.
type Subject string

const (
	SubjectGeneral         Subject = "General"
	SubjectDataStructures  Subject = "Data Structures"
	SubjectWebDevelopment  Subject = "Web Development"
	SubjectMachineLearning Subject = "Machine Learning"
	SubjectPython          Subject = "Python"
	SubjectMathematics     Subject = "Mathematics"
)

// Subjects lists all subjects in display order.
var Subjects = []Subject{
	SubjectGeneral,
	SubjectDataStructures,
	SubjectWebDevelopment,
	SubjectMachineLearning,
	SubjectPython,
	SubjectMathematics,
}

// Next cycles to the following subject, wrapping around.
func (s Subject) Next() Subject {
	for i, v := range Subjects {
		if v == s {
			return Subjects[(i+1)%len(Subjects)]
		}
	}
	return SubjectGeneral
}

// Valid reports whether s is a known subject.
func (s Subject) Valid() bool {
	for _, v := range Subjects {
		if v == s {
			return true
		}
	}
	return false
}

// Role identifies the sender of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn of the tutoring conversation.
// Messages are immutable once appended.
type ChatMessage struct {
	Role Role
	Text string
}

// Greeting is the assistant message every session opens with.
const Greeting = "Hi! I'm EduMate AI — your personalized tutor. I adjust explanations to your level and chosen subject. What would you like to learn today?"

// RequestKind labels the categories of model requests that share the
// single in-flight slot.
type RequestKind string

const (
	RequestChat    RequestKind = "chat"
	RequestQuiz    RequestKind = "quiz"
	RequestSummary RequestKind = "summary"
	RequestPlan    RequestKind = "plan"
)

// LastQuiz records the most recent submitted quiz for summary prompts.
type LastQuiz struct {
	Subject Subject
	Level   Level
	Score   int
	Total   int
}

// Session owns all mutable state scoped to one tutoring session: level,
// subject, conversation history, the in-flight guard, and the last quiz
// outcome. The view layer reads snapshots; all mutation goes through methods.
// The in-flight guard is safe for concurrent use: command goroutines release
// the slot when their request completes, whichever screen is active by then.
type Session struct {
	ID      string
	Level   Level
	Subject Subject

	messages []ChatMessage
	lastQuiz *LastQuiz

	mu       sync.Mutex
	inFlight RequestKind
}

// New creates a session seeded with the greeting message.
func New(level Level, subject Subject) *Session {
	return &Session{
		ID:      uuid.New().String(),
		Level:   level,
		Subject: subject,
		messages: []ChatMessage{
			{Role: RoleAssistant, Text: Greeting},
		},
	}
}

// Messages returns a copy of the conversation history.
func (s *Session) Messages() []ChatMessage {
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// HasExchange reports whether any turns exist beyond the greeting.
// Summary and plan generation require at least one real exchange.
func (s *Session) HasExchange() bool {
	return len(s.messages) > 1
}

// AppendUser appends a user turn.
func (s *Session) AppendUser(text string) {
	s.messages = append(s.messages, ChatMessage{Role: RoleUser, Text: text})
}

// AppendAssistant appends an assistant turn.
func (s *Session) AppendAssistant(text string) {
	s.messages = append(s.messages, ChatMessage{Role: RoleAssistant, Text: text})
}

// Begin claims the in-flight slot for a request. All request categories are
// mutually exclusive: while any one is in flight, starting another fails.
func (s *Session) Begin(kind RequestKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight != "" {
		return fmt.Errorf("a %s request is already in flight", s.inFlight)
	}
	s.inFlight = kind
	return nil
}

// End releases the in-flight slot.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = ""
}

// Busy reports whether any request is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight != ""
}

// InFlight returns the kind of the request currently in flight, or "".
func (s *Session) InFlight() RequestKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// RecordQuiz stores the outcome of a submitted quiz.
func (s *Session) RecordQuiz(outcome LastQuiz) {
	s.lastQuiz = &outcome
}

// LastQuizOutcome returns the most recent submitted quiz, or nil.
func (s *Session) LastQuizOutcome() *LastQuiz {
	if s.lastQuiz == nil {
		return nil
	}
	out := *s.lastQuiz
	return &out
}
