package port

import "context"

// Chat message roles understood by ChatCompleter implementations.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one role-tagged message of a chat completion request.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatRequest carries the sampling parameters for a single completion.
type ChatRequest struct {
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int64
}

// ChatCompleter abstracts a chat-style language model. Complete returns the text
// of the first completion, or "" when the model returned none.
type ChatCompleter interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}
