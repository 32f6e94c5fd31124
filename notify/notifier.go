// Package notify carries user-facing notices across the presentation
// boundary. Notices are fire-and-forget: the session core emits them and
// never depends on how (or whether) they are rendered.
package notify

import (
	"context"
	"log/slog"
)

// Level is the severity of a notice as shown to the user.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// SlogLevel maps the notice level to a slog.Level for log emission.
// Success renders as info; the original level is preserved as an attribute.
func (l Level) SlogLevel() slog.Level {
	if l == LevelError {
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Notice is a single user-facing notification.
type Notice struct {
	Level Level
	Text  string
}

// Info creates an informational notice.
func Info(text string) Notice {
	return Notice{Level: LevelInfo, Text: text}
}

// Success creates a success notice.
func Success(text string) Notice {
	return Notice{Level: LevelSuccess, Text: text}
}

// Error creates an error notice.
func Error(text string) Notice {
	return Notice{Level: LevelError, Text: text}
}

// Notifier receives notices from the session core.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}
