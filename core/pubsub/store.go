package pubsub

import "sync"

// store is the subscriber registry behind a Publisher.
// Implementations must be safe for concurrent use.
type store[M any] interface {
	// add registers fn under sub and returns the registry size.
	add(sub *Subscription, fn func(M)) int
	// remove deletes sub's entry and reports whether it existed.
	remove(sub *Subscription) (bool, int)
	// clear drops every entry and returns the subscriptions that are still reachable.
	clear() []*Subscription
	// snapshot returns the callbacks registered at the time of the call.
	snapshot() []func(M)
	len() int
}

// strongStore owns its subscriptions: entries live until removed.
type strongStore[M any] struct {
	mu          sync.Mutex
	subscribers map[*Subscription]func(M)
}

func newStrongStore[M any]() *strongStore[M] {
	return &strongStore[M]{
		subscribers: make(map[*Subscription]func(M)),
	}
}

func (s *strongStore[M]) add(sub *Subscription, fn func(M)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers[sub] = fn
	return len(s.subscribers)
}

func (s *strongStore[M]) remove(sub *Subscription) (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscribers[sub]; !ok {
		return false, len(s.subscribers)
	}
	delete(s.subscribers, sub)
	return true, len(s.subscribers)
}

func (s *strongStore[M]) clear() []*Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := make([]*Subscription, 0, len(s.subscribers))
	for sub := range s.subscribers {
		subs = append(subs, sub)
	}
	clear(s.subscribers)
	return subs
}

func (s *strongStore[M]) snapshot() []func(M) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fns := make([]func(M), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	return fns
}

func (s *strongStore[M]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.subscribers)
}
