// Package responder produces assistant replies for a session. A Source
// decides what to say; the Gateway decides when it lands, simulating the
// think time of a remote assistant and keeping delivery cancellable.
package responder

import (
	"context"
	"errors"

	"github.com/aayushCywarden/animagic-space/core/chat"
)

var (
	// ErrEmptyCatalog is returned when a canned source has no replies to
	// choose from.
	ErrEmptyCatalog = errors.New("responder: reply catalog is empty")

	// ErrNotConfigured is returned when a source is missing a required
	// setting, such as the OpenAI base URL.
	ErrNotConfigured = errors.New("responder: source not configured")
)

// Source produces a reply to the conversation so far. history is ordered
// oldest first and must not be mutated.
type Source interface {
	Reply(ctx context.Context, history []chat.Message) (string, error)
}
