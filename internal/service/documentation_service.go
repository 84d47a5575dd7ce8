package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/google/uuid"

	"codedoc/internal/domain"
	"codedoc/internal/port"
)

// DocumentationService runs the summarize → explain → arbitrate pipeline.
type DocumentationService interface {
	Generate(ctx context.Context, code string) (*domain.DocumentationResponse, error)
}

type documentationService struct {
	summarizer port.TechnicalSummarizer
	explainer  port.PlainExplainer
	arbiter    port.DraftArbiter
	auditRepo  port.GenerationAuditRepository
}

// NewDocumentationService creates a new DocumentationService implementation.
func NewDocumentationService(
	summarizer port.TechnicalSummarizer,
	explainer port.PlainExplainer,
	arbiter port.DraftArbiter,
	auditRepo port.GenerationAuditRepository,
) DocumentationService {
	return &documentationService{
		summarizer: summarizer,
		explainer:  explainer,
		arbiter:    arbiter,
		auditRepo:  auditRepo,
	}
}

// Generate calls the three stages strictly in order. The arbiter needs both
// drafts, so nothing runs in parallel. Summarizer failures arrive here as an
// empty draft; explainer and arbiter failures abort the run.
func (s *documentationService) Generate(ctx context.Context, code string) (*domain.DocumentationResponse, error) {
	if code == "" {
		return nil, domain.ErrNoCodeProvided
	}

	start := time.Now()
	sum := sha256.Sum256([]byte(code))
	audit := &domain.GenerationAudit{
		ID:         uuid.New(),
		CodeSHA256: hex.EncodeToString(sum[:]),
		CodeLength: len(code),
	}

	technicalDraft := s.summarizer.Summarize(ctx, code)
	audit.TechnicalDraftEmpty = technicalDraft == ""

	plainDraft, err := s.explainer.ExplainPlainly(ctx, code)
	if err != nil {
		s.record(ctx, audit, start, err)
		return nil, err
	}

	out, err := s.arbiter.Arbitrate(ctx, technicalDraft, plainDraft)
	if err != nil {
		s.record(ctx, audit, start, err)
		return nil, err
	}
	audit.ReplyMalformed = out.ReplyMalformed

	s.record(ctx, audit, start, nil)
	log.Printf("service.DocumentationService: generation %s completed in %s", audit.ID, time.Since(start))

	result := out.Result
	return &result, nil
}

// record writes the audit entry. Audit failures never affect the response.
func (s *documentationService) record(ctx context.Context, audit *domain.GenerationAudit, start time.Time, runErr error) {
	audit.Status = domain.GenerationCompleted
	if runErr != nil {
		audit.Status = domain.GenerationFailed
		audit.ErrorMessage = runErr.Error()
	}
	audit.DurationMS = time.Since(start).Milliseconds()
	audit.CreatedAt = time.Now().UTC()

	if err := s.auditRepo.Create(context.WithoutCancel(ctx), audit); err != nil {
		log.Printf("service.DocumentationService: recording audit %s: %v", audit.ID, err)
	}
}
