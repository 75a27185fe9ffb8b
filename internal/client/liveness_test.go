package client

import (
	"testing"
	"time"
)

func TestIsLive(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"fresh report", 5 * time.Second, true},
		{"just under the threshold", 299 * time.Second, true},
		{"exactly at the threshold", 300 * time.Second, false},
		{"long gone", time.Hour, false},
		{"clock skew puts the report in the future", -10 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsLive(now.Add(-tt.age), now)
			if got != tt.want {
				t.Errorf("IsLive(age=%v) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"seconds old", 5 * time.Second, "just now"},
		{"under a minute", 45 * time.Second, "45s ago"},
		{"minutes old", 150 * time.Second, "2m ago"},
		{"boundary to minutes", time.Minute, "1m ago"},
		{"hours old falls back to clock time", 2 * time.Hour, "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAge(now.Add(-tt.age), now)
			if got != tt.want {
				t.Errorf("FormatAge(age=%v) = %q, want %q", tt.age, got, tt.want)
			}
		})
	}
}
