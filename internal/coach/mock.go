package coach

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is a canned reply for the MockProvider.
type MockReply struct {
	JSON json.RawMessage
	Err  error
}

// MockProvider is a deterministic Provider for testing. It returns canned
// replies in FIFO order and records all requests.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []Request
}

// NewMockProvider creates a MockProvider with the given canned replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

// Complete returns the next canned reply, or ErrUnavailable if the queue
// is empty.
func (m *MockProvider) Complete(_ context.Context, req Request) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.replies) == 0 {
		return nil, &ErrUnavailable{}
	}

	next := m.replies[0]
	m.replies = m.replies[1:]

	if next.Err != nil {
		return nil, next.Err
	}

	return &Reply{JSON: next.JSON, Model: "mock"}, nil
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Model() string { return "mock" }

// CallCount returns the number of Complete calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
