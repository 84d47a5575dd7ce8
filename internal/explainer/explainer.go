// Package explainer asks a language model to explain code for a non-technical reader.
package explainer

import (
	"context"
	"fmt"
	"strings"

	"codedoc/internal/port"
)

const (
	systemPrompt = "You are a helpful assistant that explains code in simple English."

	temperature = 0.2
	maxTokens   = 600
)

var _ port.PlainExplainer = (*Explainer)(nil)

// Explainer produces the plain-language draft. Unlike the summarizer it does not
// absorb failures: callers must handle the returned error.
type Explainer struct {
	llm port.ChatCompleter
}

// New creates an Explainer backed by the given language model.
func New(llm port.ChatCompleter) *Explainer {
	return &Explainer{llm: llm}
}

func (e *Explainer) ExplainPlainly(ctx context.Context, code string) (string, error) {
	text, err := e.llm.Complete(ctx, port.ChatRequest{
		Messages: []port.ChatMessage{
			{Role: port.RoleSystem, Content: systemPrompt},
			{Role: port.RoleUser, Content: BuildPrompt(code)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("plain explanation: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// BuildPrompt returns the user prompt for the plain-language draft.
func BuildPrompt(code string) string {
	return "Explain the following code in plain English for a non-technical person:\n\n" + code
}
