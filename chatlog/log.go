// Package chatlog records the ordered message transcript of a session.
package chatlog

import (
	"github.com/aayushCywarden/animagic-space/core/chat"
)

// Log is an append-only, ordered record of session messages. Insertion
// order is display and causal order; entries are immutable once stored and
// message ids are unique within a log. Implementations must be safe for
// concurrent use.
type Log interface {
	// Append adds a message to the end of the log. The only precondition
	// is a well-formed message: non-empty text and a known sender.
	Append(msg chat.Message) error
	// Snapshot returns a defensive copy of the log in insertion order,
	// reflecting all appends up to the call.
	Snapshot() []chat.Message
	// Len reports the number of stored messages.
	Len() int
	// Clear discards all messages; called at session teardown.
	Clear() error
}
