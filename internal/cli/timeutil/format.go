// Package timeutil formats timestamps for CLI output.
package timeutil

import "time"

// LocalTimeFormat is used for timestamps shown to the user.
const LocalTimeFormat = "Mon Jan 2 15:04:05 2006"

// ClockFormat stamps repeated output such as watch redraws.
const ClockFormat = "15:04:05.000"

// FormatTime renders an RFC3339 timestamp in local time. Anything that does
// not parse, such as an "unknown" build date, is returned unchanged.
func FormatTime(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Local().Format(LocalTimeFormat)
}

// Clock renders t as a local wall-clock time with milliseconds.
func Clock(t time.Time) string {
	return t.Local().Format(ClockFormat)
}
