// Package memory fournit un adaptateur KV en mémoire, utilisé par les tests.
package memory

import (
	"sync"

	"github.com/Vedlovable/Samadhaan-Setu/internal/storage"
)

type Store struct {
	mu        sync.RWMutex
	data      map[string][]byte
	listeners []storage.ChangeFunc
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound{Key: key}
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	listeners := append([]storage.ChangeFunc(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(key)
	}
	return nil
}

func (s *Store) Subscribe(fn storage.ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
