package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentationRequest is the inbound payload of POST /api/generate.
type DocumentationRequest struct {
	Code string `json:"code"`
}

// ArbitrationResult is the final pair of documents chosen by the arbiter.
// Both fields are always present; they are empty when the reply could not be parsed.
type ArbitrationResult struct {
	Technical    string `json:"technical"`
	Professional string `json:"professional"`
}

// DocumentationResponse is returned to the caller verbatim from the arbiter.
type DocumentationResponse = ArbitrationResult

// GenerationStatus is the outcome of a single pipeline run.
type GenerationStatus string

const (
	GenerationCompleted GenerationStatus = "completed"
	GenerationFailed    GenerationStatus = "failed"
)

// GenerationAudit records how one pipeline run went. It never carries the
// generated documents.
type GenerationAudit struct {
	ID                  uuid.UUID        `db:"id" json:"id"`
	CodeSHA256          string           `db:"code_sha256" json:"code_sha256"`
	CodeLength          int              `db:"code_length" json:"code_length"`
	TechnicalDraftEmpty bool             `db:"technical_draft_empty" json:"technical_draft_empty"`
	ReplyMalformed      bool             `db:"reply_malformed" json:"reply_malformed"`
	Status              GenerationStatus `db:"status" json:"status"`
	ErrorMessage        string           `db:"error_message" json:"error_message,omitempty"`
	DurationMS          int64            `db:"duration_ms" json:"duration_ms"`
	CreatedAt           time.Time        `db:"created_at" json:"created_at"`
}
