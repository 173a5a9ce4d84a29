package utils

import (
	"sync"
	"time"
)

// Clock reports the current time. Stores take one so tests can move time.
type Clock func() time.Time

// GetNowTz returns the current time in the local zone, truncated to whole
// seconds to match the precision sessions are stored with.
func GetNowTz() time.Time {
	loc, err := time.LoadLocation("Local")
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Truncate(time.Second)
}

// FixedClock returns a Clock that only moves when advance is called.
func FixedClock(start time.Time) (clock Clock, advance func(d time.Duration)) {
	var mu sync.Mutex
	now := start
	clock = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance = func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(d)
	}
	return clock, advance
}
