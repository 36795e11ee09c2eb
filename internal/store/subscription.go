// internal/store/subscription.go
package store

import "sync"

// subscription is a conflated channel: it holds at most one pending State and
// a newer one replaces it.
type subscription struct {
	ch     chan State
	closed bool
}

func (sub *subscription) offerLocked(st State) {
	if sub.closed {
		return
	}
	select {
	case <-sub.ch:
	default:
	}
	select {
	case sub.ch <- st:
	default:
	}
}

func (sub *subscription) closeLocked() {
	if !sub.closed {
		sub.closed = true
		close(sub.ch)
	}
}

// Subscribe returns a channel that first yields the current state and then
// the latest state after each change. The channel is closed by the returned
// cancel func or when the store is closed.
func (s *ProductStore) Subscribe() (<-chan State, func()) {
	sub := &subscription{ch: make(chan State, 1)}

	s.mu.Lock()
	sub.offerLocked(s.state.clone())
	if s.closed {
		sub.closeLocked()
	} else {
		s.subs[sub] = struct{}{}
	}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, sub)
			sub.closeLocked()
		})
	}
	return sub.ch, cancel
}

// publishLocked pushes the current state to every subscriber. s.mu must be held.
func (s *ProductStore) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	for sub := range s.subs {
		sub.offerLocked(s.state.clone())
	}
}
