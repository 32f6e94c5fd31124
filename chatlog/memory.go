package chatlog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aayushCywarden/animagic-space/core/chat"
)

type memoryLog struct {
	mu       sync.RWMutex
	messages []chat.Message
}

// NewMemoryLog creates a Log backed by an in-memory slice. This is the
// default backend; the transcript lives and dies with the session.
func NewMemoryLog() Log {
	return &memoryLog{}
}

func (l *memoryLog) Append(msg chat.Message) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
	return nil
}

func (l *memoryLog) Snapshot() []chat.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.messages)
}

func (l *memoryLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

func (l *memoryLog) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
	return nil
}
