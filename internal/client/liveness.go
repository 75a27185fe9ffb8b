package client

import (
	"fmt"
	"time"
)

// LiveThreshold is how recent a report must be for a driver to count as
// live. A report exactly this old is already offline.
const LiveThreshold = 300 * time.Second

// IsLive reports whether a location updated at the given time still counts
// as live at now.
func IsLive(updatedAt, now time.Time) bool {
	return now.Sub(updatedAt) < LiveThreshold
}

// FormatAge renders how old a report is, coarsening with age: seconds,
// then minutes, then just the wall-clock time of the report.
func FormatAge(updatedAt, now time.Time) string {
	age := now.Sub(updatedAt)

	switch {
	case age < 10*time.Second:
		return "just now"
	case age < time.Minute:
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return updatedAt.Format("15:04")
	}
}
