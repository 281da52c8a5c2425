package utils

import "time"

// Clock abstracts the wall clock so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads time.Now in Location (time.Local when nil).
type RealClock struct {
	Location *time.Location
}

func (c RealClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
