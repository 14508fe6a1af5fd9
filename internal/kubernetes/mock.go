package kubernetes

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the JobLister interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	ListJobsFunc func(ctx context.Context, namespace string) ([]Job, error)

	// Call records
	ListJobsCalls []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListJobsCalls = nil
}

// ListJobsCallCount returns the number of times ListJobs was called.
func (m *MockClient) ListJobsCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ListJobsCalls)
}

func (m *MockClient) ListJobs(ctx context.Context, namespace string) ([]Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListJobsCalls = append(m.ListJobsCalls, namespace)
	if m.ListJobsFunc != nil {
		return m.ListJobsFunc(ctx, namespace)
	}
	return []Job{}, nil
}
