package cart

import (
	"context"
	"sync"
)

// Store persists cart snapshots keyed by session id. Implementations
// signal an absent cart with (nil, nil).
type Store interface {
	Get(ctx context.Context, sessionID string) (*Snapshot, error)
	Put(ctx context.Context, snapshot *Snapshot) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryStore struct {
	mu    sync.Mutex
	carts map[string]Snapshot
}

// NewMemoryStore returns a process-local cart store. Carts live for the
// lifetime of the process only.
func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[string]Snapshot)}
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.carts[sessionID]
	if !ok {
		return nil, nil
	}
	copied := snapshot
	copied.Items = append([]LineItem(nil), snapshot.Items...)
	return &copied, nil
}

func (s *memoryStore) Put(_ context.Context, snapshot *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *snapshot
	copied.Items = append([]LineItem(nil), snapshot.Items...)
	s.carts[snapshot.SessionID] = copied
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
