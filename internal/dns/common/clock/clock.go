package clock

import "time"

// Clock abstracts the wall clock so timings can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// Since returns the time elapsed on c since t.
func Since(c Clock, t time.Time) time.Duration {
	return c.Now().Sub(t)
}

type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns CurrentTime, optionally moving forward by Step on every call.
type MockClock struct {
	CurrentTime time.Time
	Step        time.Duration
}

func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	if c.Step != 0 {
		c.CurrentTime = c.CurrentTime.Add(c.Step)
	}
	return now
}

func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
