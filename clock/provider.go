package clock

import (
	"sync"
	"time"
)

// TimeProvider supplies the wall time the clock synchronizes against
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a hand-cranked time source for tests: wall time stands
// still except when Advance turns it forward
type MockTimeProvider struct {
	mu      sync.Mutex
	epoch   time.Time
	elapsed time.Duration
}

// NewMockTimeProvider creates a mock pinned at the given instant
func NewMockTimeProvider(epoch time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: epoch}
}

// Now returns the epoch plus everything advanced so far
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch.Add(m.elapsed)
}

// Advance turns the mock clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed += d
}
