package notify

import (
	"context"
	"log/slog"
)

// SlogNotifier renders notices to a slog.Logger. The notice text becomes the
// log message and the user-facing severity is kept as a "level" attribute.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a SlogNotifier emitting to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Notify(ctx context.Context, notice Notice) {
	n.logger.LogAttrs(ctx, notice.Level.SlogLevel(), notice.Text,
		slog.String("level", string(notice.Level)),
	)
}
