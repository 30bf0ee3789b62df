// Package store holds client-side application state: a typed action
// union folded by pure reducers, with no global singleton.
package store

import "sync"

type Store struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
}

func NewStore() *Store {
	return &Store{state: NewState()}
}

// Dispatch reduces the action into the state and notifies subscribers
// with the new snapshot.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	state := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
