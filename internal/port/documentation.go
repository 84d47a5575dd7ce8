package port

import (
	"context"

	"codedoc/internal/domain"
)

// TechnicalSummarizer produces the technical draft. It absorbs its own failures
// and returns an empty draft instead of an error.
type TechnicalSummarizer interface {
	Summarize(ctx context.Context, code string) string
}

// PlainExplainer produces the plain-language draft. Failures are returned to the caller.
type PlainExplainer interface {
	ExplainPlainly(ctx context.Context, code string) (string, error)
}

// ArbitrationOutput is the arbiter's result plus whether its reply had to be discarded.
type ArbitrationOutput struct {
	Result         domain.ArbitrationResult
	ReplyMalformed bool
}

// DraftArbiter merges the two drafts into the final documents.
type DraftArbiter interface {
	Arbitrate(ctx context.Context, technicalDraft, plainDraft string) (*ArbitrationOutput, error)
}
