package responder

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/aayushCywarden/animagic-space/core/chat"
)

// DefaultCatalog is the stock set of assistant replies.
func DefaultCatalog() []string {
	return []string{
		"I understand what you're asking. Let me help you with that.",
		"That's an interesting question! Here's what I think...",
		"I can definitely assist you with that request.",
		"Based on the information I have, I'd recommend the following approach...",
		"Great question! Let me provide some insights on this topic.",
	}
}

type cannedSource struct {
	catalog []string

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewCannedSource creates a Source that picks a uniformly random reply
// from catalog. A nil or empty catalog falls back to DefaultCatalog. A
// non-zero seed makes the pick sequence reproducible.
func NewCannedSource(catalog []string, seed int64) Source {
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &cannedSource{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (s *cannedSource) Reply(ctx context.Context, history []chat.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.catalog) == 0 {
		return "", ErrEmptyCatalog
	}
	s.mu.Lock()
	i := s.rng.Intn(len(s.catalog))
	s.mu.Unlock()
	return s.catalog[i], nil
}
