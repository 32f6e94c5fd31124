package session

import "github.com/aayushCywarden/animagic-space/observability"

// Observability event types emitted by the session controller.
const (
	EventEnter        observability.EventType = "session.enter"
	EventGreeting     observability.EventType = "session.greeting"
	EventMessageSent  observability.EventType = "session.message_sent"
	EventReply        observability.EventType = "session.reply"
	EventReplyFailed  observability.EventType = "session.reply_failed"
	EventCaptureStart observability.EventType = "session.capture_start"
	EventCaptureStop  observability.EventType = "session.capture_stop"
	EventTranscript   observability.EventType = "session.transcript"
	EventEnd          observability.EventType = "session.end"
)
