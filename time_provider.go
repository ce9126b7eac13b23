package isolate

import "time"

// TimeProvider is the clock that stamps plugin events.
type TimeProvider interface {
	Now() time.Time
}

// DefaultTimeProvider reads the system clock.
type DefaultTimeProvider struct{}

// NewDefaultTimeProvider creates a DefaultTimeProvider.
func NewDefaultTimeProvider() *DefaultTimeProvider {
	return &DefaultTimeProvider{}
}

// Now returns time.Now().
func (p *DefaultTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider returns a fixed time so event timestamps can be asserted.
type MockTimeProvider struct {
	fixedTime time.Time
}

// NewMockTimeProvider creates a MockTimeProvider stopped at t.
func NewMockTimeProvider(t time.Time) *MockTimeProvider {
	return &MockTimeProvider{fixedTime: t}
}

// SetTime moves the clock to t.
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.fixedTime = t
}

// Now returns the fixed time.
func (m *MockTimeProvider) Now() time.Time {
	return m.fixedTime
}

// Compile-time checks.
var (
	_ TimeProvider = (*DefaultTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)
