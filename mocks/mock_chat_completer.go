package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"codedoc/internal/port"
)

// MockChatCompleter is a mock implementation of port.ChatCompleter.
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, req port.ChatRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
