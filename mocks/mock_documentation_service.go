package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"codedoc/internal/domain"
)

// MockDocumentationService is a mock implementation of service.DocumentationService.
type MockDocumentationService struct {
	mock.Mock
}

func (m *MockDocumentationService) Generate(ctx context.Context, code string) (*domain.DocumentationResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentationResponse), args.Error(1)
}
