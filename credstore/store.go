// Package credstore persists the opaque session credential. The store is a
// single key-value slot: a present value means a login or registration
// succeeded, an empty slot means the user must authenticate. The credential
// format is opaque to everything in this module except the guard that mints
// it.
package credstore

import (
	"context"
	"errors"
)

// ErrNoCredential is returned by Load when the slot is empty.
var ErrNoCredential = errors.New("no credential stored")

// Store holds the session credential. Implementations must be safe for
// concurrent use.
type Store interface {
	// Load returns the stored credential, or ErrNoCredential when the slot
	// is empty.
	Load(ctx context.Context) (string, error)
	// Save writes the credential, overwriting any previous value.
	Save(ctx context.Context, credential string) error
	// Clear empties the slot. Clearing an already-empty slot is not an
	// error.
	Clear(ctx context.Context) error
}
