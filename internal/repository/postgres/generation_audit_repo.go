package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"codedoc/internal/domain"
	"codedoc/internal/port"
)

type generationAuditRepo struct {
	db *sqlx.DB
}

// NewGenerationAuditRepo creates a new PostgreSQL-backed GenerationAuditRepository.
func NewGenerationAuditRepo(db *sqlx.DB) port.GenerationAuditRepository {
	return &generationAuditRepo{db: db}
}

func (r *generationAuditRepo) Create(ctx context.Context, entry *domain.GenerationAudit) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO generation_audit_log
		   (id, code_sha256, code_length, technical_draft_empty, reply_malformed, status, error_message, duration_ms, created_at)
		 VALUES
		   (:id, :code_sha256, :code_length, :technical_draft_empty, :reply_malformed, :status, :error_message, :duration_ms, :created_at)`,
		entry)
	if err != nil {
		return fmt.Errorf("generationAuditRepo.Create: %w", err)
	}
	return nil
}

func (r *generationAuditRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("generationAuditRepo.Ping: %w", err)
	}
	return nil
}
