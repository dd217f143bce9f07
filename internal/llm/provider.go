package llm

import "context"

// Provider is the abstraction over the external chat-completion endpoint.
// Every AI feature in EduMate (tutor chat, quiz generation, session summary,
// revision plan) goes through this single interface.
type Provider interface {
	// Chat sends a conversation to the model and returns the generated reply.
	// The reply is raw text; callers that demand a structured payload (the
	// quiz engine) parse and validate it themselves.
	Chat(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one chat-completion call.
type Request struct {
	// System is the system prompt establishing the tutor persona.
	System string

	// Messages is the conversation so far, oldest first. The final entry is
	// normally the new user turn.
	Messages []Message

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64

	// MaxTokens caps the length of the generated reply.
	MaxTokens int
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model's reply.
type Response struct {
	// Text is the generated reply with surrounding whitespace trimmed.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// FinishReason is normalized to "end" or "max_tokens".
	FinishReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
