package checkout

import (
	"context"
	"sync"

	"github.com/voltkart/storefront-backend/pkg/enums"
)

// State is the per-session checkout pipeline position. The placed order
// rides along until it is consumed.
type State struct {
	SessionID string              `json:"session_id"`
	Stage     enums.CheckoutStage `json:"stage"`
	Address   *Address            `json:"address,omitempty"`
	Method    enums.PaymentMethod `json:"method,omitempty"`
	Order     *Order              `json:"order,omitempty"`
}

// StateStore persists checkout states keyed by session id. Absent state
// is signalled with (nil, nil).
type StateStore interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Put(ctx context.Context, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryStateStore struct {
	mu     sync.Mutex
	states map[string]State
}

// NewMemoryStateStore returns a process-local state store.
func NewMemoryStateStore() StateStore {
	return &memoryStateStore{states: make(map[string]State)}
}

func (s *memoryStateStore) Get(_ context.Context, sessionID string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[sessionID]
	if !ok {
		return nil, nil
	}
	copied := state
	return &copied, nil
}

func (s *memoryStateStore) Put(_ context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.SessionID] = *state
	return nil
}

func (s *memoryStateStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}
