package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"codedoc/internal/domain"
)

// MockGenerationAuditRepo is a mock implementation of port.GenerationAuditRepository.
type MockGenerationAuditRepo struct {
	mock.Mock
}

func (m *MockGenerationAuditRepo) Create(ctx context.Context, entry *domain.GenerationAudit) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGenerationAuditRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
