// SPDX-License-Identifier: MIT

// Package logging builds the leveled slog.Logger used by hopsim.
// Operational output goes to stderr so stdout carries only results.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelTrace is a custom slog level below Debug for per-chunk detail.
const LevelTrace = slog.LevelDebug - 4

// Level names accepted by ParseLevel and the config file.
const (
	LevelNameInfo  = "info"
	LevelNameDebug = "debug"
	LevelNameTrace = "trace"
	LevelNameWarn  = "warn"
	LevelNameError = "error"
)

// ParseLevel maps a level name to a slog.Level, case-insensitively.
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelNameTrace:
		return LevelTrace
	case LevelNameDebug:
		return slog.LevelDebug
	case LevelNameWarn:
		return slog.LevelWarn
	case LevelNameError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a known level. Empty means default.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", LevelNameInfo, LevelNameDebug, LevelNameTrace, LevelNameWarn, LevelNameError:
		return true
	}
	return false
}

// NewLogger creates a text slog.Logger writing to w at the given level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Label the custom trace level
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
