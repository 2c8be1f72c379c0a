package engine

import (
	"sync"
	"time"
)

// MockClock is a controllable time source for testing. Sleep advances
// the mocked time instead of blocking, so a scheduled loop runs as
// fast as the test can drive it.
type MockClock struct {
	mu  sync.Mutex
	now time.Time

	// SleepCount tallies Sleep calls for scheduling assertions
	SleepCount int
}

// NewMockClock creates a mock clock at the given start time
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Sleep advances the mocked time by d without blocking
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.now = m.now.Add(d)
	}
	m.SleepCount++
}

// Advance moves the mocked time forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
