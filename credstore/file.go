package credstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type fileStore struct {
	path string
}

// NewFileStore creates a Store persisting the credential to a single file.
// Writes go through a temp file and rename so a crash never leaves a
// half-written credential.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCredential
		}
		return "", fmt.Errorf("load credential: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNoCredential
	}
	return string(data), nil
}

func (s *fileStore) Save(_ context.Context, credential string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(credential); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save credential: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save credential: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *fileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
