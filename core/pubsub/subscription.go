package pubsub

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscription is the handle returned by Publisher.Subscribe.
// It represents a single subscribe-to-unsubscribe lifetime and is compared by
// identity: two subscriptions are never equal, even when they wrap the same
// cancellation function.
//
// A Subscription implements io.Closer so it can be released with defer:
//
//	sub := publisher.Subscribe(handler)
//	defer sub.Close()
type Subscription struct {
	id      string
	cancel  func(*Subscription)
	closed  atomic.Bool
	release atomic.Pointer[func() bool]
}

// NewSubscription wraps cancel into a Subscription.
// Subscriptions are normally created by Publisher.Subscribe; construct one
// directly only when implementing a publisher. Unsubscribe calls cancel at
// most once per handle; cancel should still tolerate being reached through
// other paths, such as a direct Publisher.Unsubscribe.
func NewSubscription(cancel func(*Subscription)) *Subscription {
	return &Subscription{
		id:     uuid.NewString(),
		cancel: cancel,
	}
}

// ID returns a random identifier used to correlate log records.
// It plays no part in subscription identity.
func (s *Subscription) ID() string {
	return s.id
}

// Active reports whether the subscription still receives messages.
// Once inactive, a subscription never becomes active again.
func (s *Subscription) Active() bool {
	return !s.closed.Load()
}

// Unsubscribe stops delivery to the subscriber. The cancellation function
// runs on the first call only; further calls are no-ops.
func (s *Subscription) Unsubscribe() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.runRelease()
	if s.cancel != nil {
		s.cancel(s)
	}
}

// Close calls Unsubscribe and always returns nil.
func (s *Subscription) Close() error {
	s.Unsubscribe()
	return nil
}

// deactivate marks the subscription inactive without calling cancel.
// Every path to INACTIVE ends here or in Unsubscribe, and both run the release hook.
func (s *Subscription) deactivate() {
	s.closed.Store(true)
	s.runRelease()
}

// onRelease registers f to run once when the subscription becomes inactive.
// If it is already inactive, f runs immediately.
func (s *Subscription) onRelease(f func() bool) {
	s.release.Store(&f)
	if !s.Active() {
		s.runRelease()
	}
}

func (s *Subscription) runRelease() {
	if f := s.release.Swap(nil); f != nil {
		(*f)()
	}
}

// Scoped runs fn and unsubscribes sub when fn returns, including when fn
// panics. fn's error is returned unchanged. Calling sub.Unsubscribe inside fn
// is allowed: the cancellation still happens once.
//
// Example:
//
//	err := pubsub.Scoped(publisher.Subscribe(handler), func() error {
//	    publisher.Publish("hello") // delivered
//	    return nil
//	})
//	publisher.Publish("hi") // not delivered
func Scoped(sub *Subscription, fn func() error) error {
	defer sub.Unsubscribe()
	return fn()
}
