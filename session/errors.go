package session

import "errors"

var (
	// ErrNotActive is returned when an operation requires a live session
	// after End has torn it down.
	ErrNotActive = errors.New("session is not active")

	// ErrReplyPending is returned by SendMessage while an earlier message
	// is still waiting on its reply.
	ErrReplyPending = errors.New("a reply is already pending")
)
