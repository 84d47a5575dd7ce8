package port

import (
	"context"

	"codedoc/internal/domain"
)

// GenerationAuditRepository persists one audit entry per pipeline run.
type GenerationAuditRepository interface {
	Create(ctx context.Context, entry *domain.GenerationAudit) error
	Ping(ctx context.Context) error
}
