// Package storage provides object storage implementations for rendered documents.
package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/comex/backend/internal/application/document"
)

// StubObjectStorage keeps uploaded documents in memory. Use this for
// development and tests until a real storage backend is configured.
type StubObjectStorage struct {
	// BaseURL is the base URL for generated object URLs
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Ensure StubObjectStorage implements the document ObjectStorage
var _ document.ObjectStorage = (*StubObjectStorage)(nil)

// Upload stores the document in memory and returns a stub URL
func (s *StubObjectStorage) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	return s.BaseURL + "/" + key, nil
}

// Get returns a previously uploaded document (for tests)
func (s *StubObjectStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}
