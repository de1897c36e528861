// Package signal is a synchronous publish/subscribe primitive for the UI
// event loop.
package signal

// Signal delivers values to its subscribers in subscription order, on the
// caller's goroutine. It is not safe for concurrent use.
type Signal[T any] struct {
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id    int
	fn    func(T)
	alive *bool
}

// Subscription is returned by Subscribe.
type Subscription struct {
	release func()
}

// Unsubscribe removes the handler. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.release == nil {
		return
	}
	s.release()
	s.release = nil
}

// Subscribe registers fn and returns the handle that releases it.
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	s.nextID++
	id := s.nextID
	alive := true
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn, alive: &alive})
	return &Subscription{release: func() {
		alive = false
		s.remove(id)
	}}
}

func (s *Signal[T]) remove(id int) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// Emit calls every subscriber with v. A subscriber added during Emit is
// first called on the next Emit; one removed during Emit is not called again.
func (s *Signal[T]) Emit(v T) {
	subs := s.subs
	for _, sub := range subs {
		if *sub.alive {
			sub.fn(v)
		}
	}
}

// Len returns the number of active subscribers.
func (s *Signal[T]) Len() int { return len(s.subs) }

// Group releases several subscriptions together.
type Group []*Subscription

// Unsubscribe releases every subscription in the group.
func (g Group) Unsubscribe() {
	for _, s := range g {
		s.Unsubscribe()
	}
}
