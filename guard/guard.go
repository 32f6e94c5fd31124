// Package guard gates entry into a chat session. A session controller may
// only be constructed after Enter confirms a credential is present; the
// guard performs no side effects on the check itself. The guard also owns
// the two credential mutations at the session boundaries: Issue on login or
// registration success, Clear on logout.
package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aayushCywarden/animagic-space/credstore"
)

// ErrAuthRequired is returned by Enter when no credential is stored. The
// caller must redirect to authentication and must not construct a session
// controller.
var ErrAuthRequired = errors.New("authentication required")

// Guard verifies, issues, and clears the session credential.
type Guard struct {
	store credstore.Store
}

// New creates a Guard over the given credential store.
func New(store credstore.Store) *Guard {
	return &Guard{store: store}
}

// Enter returns the stored credential, failing with ErrAuthRequired when the
// slot is empty. It has no side effects.
func (g *Guard) Enter(ctx context.Context) (string, error) {
	cred, err := g.store.Load(ctx)
	if err != nil {
		if errors.Is(err, credstore.ErrNoCredential) {
			return "", ErrAuthRequired
		}
		return "", fmt.Errorf("load credential: %w", err)
	}
	return cred, nil
}

// Issue mints a fresh opaque credential and persists it. This is the single
// contract the external login and registration collaborators rely on: a
// successful auth flow ends in exactly one Issue call.
func (g *Guard) Issue(ctx context.Context) (string, error) {
	cred := uuid.Must(uuid.NewV7()).String()
	if err := g.store.Save(ctx, cred); err != nil {
		return "", fmt.Errorf("save credential: %w", err)
	}
	return cred, nil
}

// Clear removes the stored credential. Subsequent Enter attempts fail with
// ErrAuthRequired until a new credential is issued.
func (g *Guard) Clear(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
