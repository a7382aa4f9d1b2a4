package export

import (
	"context"
	"sync"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
)

// ExampleStore keeps generated examples for later export
type ExampleStore interface {
	Add(ctx context.Context, ex grammar.Example) error
	All(ctx context.Context) ([]grammar.Example, error)
}

// IntentCounter is implemented by stores that can count examples per intent
// key without loading them
type IntentCounter interface {
	CountByIntent(ctx context.Context) (map[string]int64, error)
}

// MemoryStore is an in-process ExampleStore
type MemoryStore struct {
	mu       sync.RWMutex
	examples []grammar.Example
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends an example
func (s *MemoryStore) Add(_ context.Context, ex grammar.Example) error {
	ex.Intents = append([]string(nil), ex.Intents...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.examples = append(s.examples, ex)
	return nil
}

// All returns a copy of the stored examples in insertion order
func (s *MemoryStore) All(_ context.Context) ([]grammar.Example, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]grammar.Example(nil), s.examples...), nil
}

// Len reports the number of stored examples
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.examples)
}

// CountByIntent returns the number of stored examples per intent key
func (s *MemoryStore) CountByIntent(_ context.Context) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, ex := range s.examples {
		counts[ex.IntentKey()]++
	}
	return counts, nil
}
