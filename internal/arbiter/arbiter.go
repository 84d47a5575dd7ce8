// Package arbiter compares the technical and plain-language drafts and asks a
// language model to merge them into the final pair of documents.
package arbiter

import (
	"context"
	"fmt"
	"log"
	"strings"

	"codedoc/internal/port"
)

const (
	temperature = 0.0
	maxTokens   = 800
)

var _ port.DraftArbiter = (*Arbiter)(nil)

// Arbiter merges drafts through a single deterministic-leaning completion.
type Arbiter struct {
	llm port.ChatCompleter
}

// New creates an Arbiter backed by the given language model.
func New(llm port.ChatCompleter) *Arbiter {
	return &Arbiter{llm: llm}
}

// Arbitrate returns an error only when the model call itself fails. An
// unparsable reply yields empty documents and ReplyMalformed=true.
func (a *Arbiter) Arbitrate(ctx context.Context, technicalDraft, plainDraft string) (*port.ArbitrationOutput, error) {
	log.Printf("arbiter.Arbiter: comparing drafts (technical %d bytes, plain %d bytes)", len(technicalDraft), len(plainDraft))

	text, err := a.llm.Complete(ctx, port.ChatRequest{
		Messages: []port.ChatMessage{
			{Role: port.RoleUser, Content: BuildPrompt(technicalDraft, plainDraft)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("arbitration: %w", err)
	}

	out := &port.ArbitrationOutput{}
	result, err := ParseReply(strings.TrimSpace(text))
	if err != nil {
		log.Printf("arbiter.Arbiter: discarding reply: %v", err)
		out.ReplyMalformed = true
		return out, nil
	}
	out.Result = result
	return out, nil
}
