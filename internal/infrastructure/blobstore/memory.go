// Package blobstore contiene los adaptadores del puerto BlobStore: memoria, archivos y Redis.
// El adaptador PostgreSQL vive en infrastructure/postgres.
package blobstore

import (
	"context"
	"sync"

	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

var _ repository.BlobStore = (*MemoryStore)(nil)

// MemoryStore almacén en memoria; se pierde al reiniciar. Útil en tests y modo demo.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore construye un almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
