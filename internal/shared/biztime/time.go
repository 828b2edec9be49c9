// Package biztime is the single source of wall-clock time for entities.
// All timestamps are produced and stored in UTC.
package biztime

import (
	"sync"
	"time"
)

var (
	clockMu sync.RWMutex
	clock   = func() time.Time { return time.Now() }
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock().UTC()
}

// ToUTC converts t to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FromUnixMilli converts stored epoch milliseconds back to a UTC time.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// SetClock replaces the time source and returns a function that restores the
// previous one. Intended for tests.
func SetClock(fn func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := clock
	clock = fn
	clockMu.Unlock()

	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}
