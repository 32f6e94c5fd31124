package responder

import (
	"context"
	"log/slog"
	"time"

	"github.com/aayushCywarden/animagic-space/core/chat"
	"github.com/aayushCywarden/animagic-space/sched"
)

// Gateway schedules reply delivery. Each request fires exactly once
// after the configured latency unless the returned timer is stopped
// first. The delivered message carries no ID; the caller assigns one
// when it appends the message to its log.
type Gateway struct {
	source  Source
	clock   sched.Clock
	latency time.Duration
	logger  *slog.Logger
}

// NewGateway creates a Gateway around source.
func NewGateway(source Source, clock sched.Clock, latency time.Duration, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		source:  source,
		clock:   clock,
		latency: latency,
		logger:  logger,
	}
}

// RequestReply schedules a reply to history. deliver is invoked once
// after the latency elapses, with either the assistant message or the
// source error. Stopping the returned timer before it fires guarantees
// deliver is never called.
func (g *Gateway) RequestReply(ctx context.Context, history []chat.Message, deliver func(msg chat.Message, err error)) sched.Timer {
	return g.clock.AfterFunc(g.latency, func() {
		text, err := g.source.Reply(ctx, history)
		if err != nil {
			g.logger.Error("reply source failed", "error", err)
			deliver(chat.Message{}, err)
			return
		}
		deliver(chat.Message{Text: text, Sender: chat.SenderAssistant}, nil)
	})
}
