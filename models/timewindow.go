package models

import "time"

type WindowState string

const (
	WindowPending WindowState = "pending"
	WindowActive  WindowState = "active"
	WindowExpired WindowState = "expired"
)

// ComputeWindowEnd returns start plus a whole number of calendar days.
// AddDate handles month/year rollover, so Jan 31 + 1 day is Feb 1.
func ComputeWindowEnd(start time.Time, days int) time.Time {
	return start.AddDate(0, 0, days)
}

// ClassifyWindow places now relative to [start, end].
// Both boundaries count as inside the window.
func ClassifyWindow(now, start, end time.Time) WindowState {
	if now.Before(start) {
		return WindowPending
	}
	if now.After(end) {
		return WindowExpired
	}
	return WindowActive
}
