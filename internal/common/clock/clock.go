package clock

import "time"

// Clock supplies the current time so services can be tested with fixed timestamps
//
//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/emergency-d20/internal/common/clock Clock
type Clock interface {
	// Now returns the current time
	Now() time.Time
}

// DefaultClock reads the system clock
type DefaultClock struct{}

// Now returns the current system time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
