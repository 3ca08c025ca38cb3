package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatHMS formats a duration as "HH:MM:SS".
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSecs := int64(d / time.Second)
	h := totalSecs / 3600
	m := (totalSecs % 3600) / 60
	s := totalSecs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatHMSCentis formats a duration as "HH:MM:SS.cs" with centiseconds,
// used by the stopwatch while it runs at the fast tick rate.
func FormatHMSCentis(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := int64(d/(10*time.Millisecond)) % 100
	return fmt.Sprintf("%s.%02d", FormatHMS(d), cs)
}

// FormatMS formats a duration as "MM:SS", used for pomodoro and countdown
// displays where minutes can exceed 59.
func FormatMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSecs := int64(d / time.Second)
	m := totalSecs / 60
	s := totalSecs % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ParseMMSS parses "MM:SS" or a bare number of seconds into a duration.
// Malformed input yields zero; callers reject zero-duration entries.
func ParseMMSS(s string) time.Duration {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		secs, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
		if err != nil {
			return 0
		}
		return time.Duration(secs) * time.Second
	case 2:
		mins, _ := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
		secs, _ := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
		return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second
	default:
		return 0
	}
}

// TruncateName shortens a countdown name to MaxCountdownNameLen runes.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxCountdownNameLen {
		return name
	}
	return string(runes[:MaxCountdownNameLen])
}
