package credstore

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu         sync.RWMutex
	credential string
	present    bool
}

// NewMemoryStore creates a Store holding the credential in process memory.
// The slot starts empty.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Load(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.present {
		return "", ErrNoCredential
	}
	return s.credential, nil
}

func (s *memoryStore) Save(_ context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = credential
	s.present = true
	return nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = ""
	s.present = false
	return nil
}
