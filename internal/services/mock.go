package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/village-of-theron/pkg/dialogue"
)

// MockProvider is a dialogue.Provider for tests.
type MockProvider struct {
	ReplyFunc func(ctx context.Context, req dialogue.Request) (string, error)

	// Track calls for testing
	ReplyCalls []dialogue.Request

	mu sync.Mutex // protects fields above
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		ReplyCalls: make([]dialogue.Request, 0),
	}
}

func (m *MockProvider) Reply(ctx context.Context, req dialogue.Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReplyCalls = append(m.ReplyCalls, req)

	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, req)
	}
	return req.NPCName + " hums thoughtfully.", nil
}

// CallCount returns how many replies have been requested.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ReplyCalls)
}
