package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Store holds a State and serializes dispatch. Subscribers and the log-out
// effect run outside the lock, in dispatch order: one dispatching goroutine
// delivers queued transitions while concurrent or nested dispatches only
// enqueue theirs. The last state a subscriber sees is always State().
type Store struct {
	mu       sync.Mutex
	state    State
	subs     []subscriber
	nextID   int
	queue    []transition
	draining bool
	logger   *zap.Logger
}

type transition struct {
	ctx    context.Context
	action ActionType
	next   State
	effect Effect
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(State)
}

// NewStore returns a store in the initial state. A nil logger discards logs.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive every new state. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch applies a and notifies subscribers. A failed log-out is logged and
// does not undo the transition. When another dispatch is already delivering,
// a's effect and notifications are run by that dispatch after its own, so
// Dispatch may return before they happen.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	s.mu.Lock()
	next, eff, err := Reduce(s.state, a)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.queue = append(s.queue, transition{ctx: ctx, action: a.Type, next: next, effect: eff, subs: subs})
	if s.draining {
		s.mu.Unlock()
		return nil
	}
	s.draining = true
	finished := false
	defer func() {
		if finished {
			return
		}
		// A subscriber panicked; drop the rest so later dispatches deliver.
		s.mu.Lock()
		s.draining = false
		s.queue = nil
		s.mu.Unlock()
	}()
	for {
		if len(s.queue) == 0 {
			s.draining = false
			finished = true
			s.mu.Unlock()
			return nil
		}
		t := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
		s.deliver(t)
		s.mu.Lock()
	}
}

func (s *Store) deliver(t transition) {
	s.logger.Debug("session action", zap.String("action", string(t.action)))
	if t.effect.LogOut != nil {
		if err := t.effect.LogOut.LogOut(t.ctx); err != nil {
			s.logger.Warn("log out failed", zap.Error(err))
		}
	}
	for _, sub := range t.subs {
		sub.fn(t.next)
	}
}
