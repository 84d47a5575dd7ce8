package noop

import (
	"context"
	"log"

	"codedoc/internal/domain"
	"codedoc/internal/port"
)

type generationAuditRepo struct{}

// NewGenerationAuditRepo creates a GenerationAuditRepository that only logs entries.
func NewGenerationAuditRepo() port.GenerationAuditRepository {
	return &generationAuditRepo{}
}

func (r *generationAuditRepo) Create(_ context.Context, entry *domain.GenerationAudit) error {
	log.Printf("[NOOP AUDIT] generation %s: status=%s duration=%dms technical_empty=%t reply_malformed=%t",
		entry.ID, entry.Status, entry.DurationMS, entry.TechnicalDraftEmpty, entry.ReplyMalformed)
	return nil
}

func (r *generationAuditRepo) Ping(_ context.Context) error {
	return nil
}
