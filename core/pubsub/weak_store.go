package pubsub

import (
	"runtime"
	"sync"
	"weak"
)

type weakEntry[M any] struct {
	id      string
	fn      func(M)
	cleanup runtime.Cleanup
}

// weakStore keys entries by weak pointers, so the registry never keeps a
// Subscription alive. An entry disappears when its Subscription is reclaimed:
// either the runtime cleanup removes it, or the next snapshot/len prunes it,
// whichever comes first. The cancellation function is not called in that case.
//
// Subscriber callbacks are held strongly. A callback that captures its own
// Subscription keeps it reachable and is never reclaimed.
type weakStore[M any] struct {
	mu        sync.Mutex
	entries   map[weak.Pointer[Subscription]]*weakEntry[M]
	onReclaim func(id string, remaining int)
}

func newWeakStore[M any](onReclaim func(id string, remaining int)) *weakStore[M] {
	return &weakStore[M]{
		entries:   make(map[weak.Pointer[Subscription]]*weakEntry[M]),
		onReclaim: onReclaim,
	}
}

func (s *weakStore[M]) add(sub *Subscription, fn func(M)) int {
	key := weak.Make(sub)
	e := &weakEntry[M]{id: sub.ID(), fn: fn}
	e.cleanup = runtime.AddCleanup(sub, s.reclaim, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = e
	return len(s.entries)
}

func (s *weakStore[M]) remove(sub *Subscription) (bool, int) {
	key := weak.Make(sub)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false, len(s.entries)
	}
	e.cleanup.Stop()
	delete(s.entries, key)
	return true, len(s.entries)
}

func (s *weakStore[M]) clear() []*Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := make([]*Subscription, 0, len(s.entries))
	for key, e := range s.entries {
		e.cleanup.Stop()
		if sub := key.Value(); sub != nil {
			subs = append(subs, sub)
		}
	}
	clear(s.entries)
	return subs
}

func (s *weakStore[M]) snapshot() []func(M) {
	s.mu.Lock()
	fns := make([]func(M), 0, len(s.entries))
	reclaimed := s.pruneLocked()
	for _, e := range s.entries {
		fns = append(fns, e.fn)
	}
	remaining := len(s.entries)
	s.mu.Unlock()

	s.notify(reclaimed, remaining)
	return fns
}

func (s *weakStore[M]) len() int {
	s.mu.Lock()
	reclaimed := s.pruneLocked()
	n := len(s.entries)
	s.mu.Unlock()

	s.notify(reclaimed, n)
	return n
}

// reclaim runs on the runtime cleanup goroutine after a Subscription becomes unreachable.
func (s *weakStore[M]) reclaim(key weak.Pointer[Subscription]) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		delete(s.entries, key)
	}
	remaining := len(s.entries)
	s.mu.Unlock()

	if ok {
		s.notify([]string{e.id}, remaining)
	}
}

// pruneLocked drops entries whose Subscription has already been collected
// but whose cleanup has not run yet. Caller must hold s.mu.
func (s *weakStore[M]) pruneLocked() []string {
	var ids []string
	for key, e := range s.entries {
		if key.Value() != nil {
			continue
		}
		e.cleanup.Stop()
		delete(s.entries, key)
		ids = append(ids, e.id)
	}
	return ids
}

func (s *weakStore[M]) notify(ids []string, remaining int) {
	if s.onReclaim == nil {
		return
	}
	for _, id := range ids {
		s.onReclaim(id, remaining)
	}
}
