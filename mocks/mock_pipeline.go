package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"codedoc/internal/port"
)

// MockTechnicalSummarizer is a mock implementation of port.TechnicalSummarizer.
type MockTechnicalSummarizer struct {
	mock.Mock
}

func (m *MockTechnicalSummarizer) Summarize(ctx context.Context, code string) string {
	args := m.Called(ctx, code)
	return args.String(0)
}

// MockPlainExplainer is a mock implementation of port.PlainExplainer.
type MockPlainExplainer struct {
	mock.Mock
}

func (m *MockPlainExplainer) ExplainPlainly(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// MockDraftArbiter is a mock implementation of port.DraftArbiter.
type MockDraftArbiter struct {
	mock.Mock
}

func (m *MockDraftArbiter) Arbitrate(ctx context.Context, technicalDraft, plainDraft string) (*port.ArbitrationOutput, error) {
	args := m.Called(ctx, technicalDraft, plainDraft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ArbitrationOutput), args.Error(1)
}
