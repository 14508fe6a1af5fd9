package metrics

import "sync"

// MockPublisher is a mock implementation of the Publisher interface for
// testing. It is safe for concurrent use.
type MockPublisher struct {
	mu sync.Mutex

	// Call records
	PublishCalls []*Snapshot

	current *Snapshot
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{current: NewSnapshot()}
}

func (m *MockPublisher) Publish(snapshot *Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = append(m.PublishCalls, snapshot)
	m.current = snapshot
}

func (m *MockPublisher) Current() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
