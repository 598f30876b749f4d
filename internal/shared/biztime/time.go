// Package biztime provides time utilities for business operations.
// All storage and transport use UTC; implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current date in UTC, truncated to midnight.
func Today() time.Time {
	return NowUTC().Truncate(24 * time.Hour)
}
