package common

import (
	"fmt"
	"log/slog"
	"strings"
)

// SlogResetLevel returns a function that resets the slog level to the previous level,
// pairs well with defer.
// Use like:
// func Test123(t *testing.T) {
//     defer common.SlogResetLevel(slog.LevelError)()
func SlogResetLevel(level slog.Level) (reset func()) {
	oldLevel := slog.SetLogLoggerLevel(level)
	return func() {
		slog.SetLogLoggerLevel(oldLevel)
	}
}

// ParseSlogLevel reads a level name (debug, info, warn, error) or a number.
func ParseSlogLevel(s string) (slog.Level, error) {
	var level slog.Level
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(s)); err == nil {
		return level, nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
		return slog.Level(n), nil
	}
	return level, fmt.Errorf("invalid log level: %q", s)
}
