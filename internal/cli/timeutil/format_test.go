package timeutil

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC).Local().Format(LocalTimeFormat)
	if got := FormatTime("2026-03-01T12:30:00Z"); got != want {
		t.Errorf("FormatTime() = %q, want %q", got, want)
	}
	for _, s := range []string{"unknown", "", "2026-03-01"} {
		if got := FormatTime(s); got != s {
			t.Errorf("FormatTime(%q) = %q, want input unchanged", s, got)
		}
	}
}

func TestClock(t *testing.T) {
	ts := time.Date(2026, 3, 1, 8, 5, 9, 42_000_000, time.Local)
	if got := Clock(ts); got != "08:05:09.042" {
		t.Errorf("Clock() = %q, want 08:05:09.042", got)
	}
}
