package pubsub

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/pubsub/core/logger"
)

const (
	policyWeak       = "weak"
	policyPersistent = "persistent"
)

// Publisher keeps a registry of subscriber callbacks and fans messages out to them.
//
// By default the registry holds subscriptions weakly: once the caller drops
// every reference to a Subscription, its callback stops receiving messages
// without Unsubscribe being called. WithPersist(true) makes the registry own
// its subscriptions, so only an explicit unsubscribe stops delivery.
//
// Publisher is safe for concurrent use.
type Publisher[M any] struct {
	store   store[M]
	persist bool
	logger  *slog.Logger
}

// New creates a Publisher for messages of type M.
//
// Example:
//
//	publisher := pubsub.New[string]()
//	sub := publisher.Subscribe(func(msg string) { fmt.Println(msg) })
//	defer sub.Close()
//
//	publisher.Publish("hello")
func New[M any](opts ...Option) *Publisher[M] {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	policy := policyWeak
	if o.persist {
		policy = policyPersistent
	}

	p := &Publisher[M]{
		persist: o.persist,
		logger:  o.logger.With(logger.Component("pubsub"), logger.Policy(policy)),
	}

	if o.persist {
		p.store = newStrongStore[M]()
	} else {
		p.store = newWeakStore[M](p.logReclaim)
	}

	return p
}

// Persistent reports whether the publisher owns its subscriptions.
func (p *Publisher[M]) Persistent() bool {
	return p.persist
}

// Len returns the number of registered subscribers.
// Under the weak policy, subscriptions already reclaimed by the garbage
// collector are not counted.
func (p *Publisher[M]) Len() int {
	return p.store.len()
}

// Publish calls every registered subscriber with msg, once each, on the
// caller's goroutine. It returns after the last subscriber returns.
//
// Delivery order between subscribers is unspecified. The subscriber set is
// captured before the first call: subscriptions added or removed by a
// subscriber during Publish take effect from the next Publish.
//
// A panicking subscriber is not recovered and stops delivery to the
// subscribers that have not been called yet.
func (p *Publisher[M]) Publish(msg M) {
	for _, fn := range p.store.snapshot() {
		fn(msg)
	}
}

// Subscribe registers fn and returns the Subscription that controls it.
// Each call creates a distinct Subscription, even for the same fn.
// Subscribe panics with ErrNilSubscriber if fn is nil.
func (p *Publisher[M]) Subscribe(fn func(M)) *Subscription {
	if fn == nil {
		panic(ErrNilSubscriber)
	}

	sub := NewSubscription(p.Unsubscribe)
	p.register(sub, fn)
	return sub
}

// SubscribeContext is like Subscribe, but the subscription is cancelled
// automatically once ctx is done. While active, a pending context keeps the
// subscription reachable, so under the weak policy it is not reclaimed before
// ctx is done. Any unsubscription (through the handle, Unsubscribe or
// UnsubscribeAll) detaches it from ctx.
func (p *Publisher[M]) SubscribeContext(ctx context.Context, fn func(M)) *Subscription {
	if fn == nil {
		panic(ErrNilSubscriber)
	}

	sub := NewSubscription(p.Unsubscribe)
	p.register(sub, fn)
	sub.onRelease(context.AfterFunc(ctx, sub.Unsubscribe))
	return sub
}

// Unsubscribe removes sub from the registry. It is a no-op for nil,
// already removed or foreign subscriptions, so it is safe to call repeatedly.
func (p *Publisher[M]) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	removed, n := p.store.remove(sub)
	if !removed {
		return
	}
	sub.deactivate()

	p.logger.Debug("subscription removed",
		logger.Action("unsubscribe"),
		logger.SubscriptionID(sub.ID()),
		logger.Subscribers(n),
	)
}

// UnsubscribeAll removes every subscription at once.
//
// The registry is cleared directly: neither Unsubscribe nor the
// subscriptions' cancellation functions are called. Code that wraps
// Unsubscribe to run extra cleanup must handle UnsubscribeAll separately.
func (p *Publisher[M]) UnsubscribeAll() {
	subs := p.store.clear()
	for _, sub := range subs {
		sub.deactivate()
	}

	p.logger.Debug("all subscriptions removed",
		logger.Action("unsubscribe_all"),
		logger.Count("removed", len(subs)),
	)
}

func (p *Publisher[M]) register(sub *Subscription, fn func(M)) {
	n := p.store.add(sub, fn)

	p.logger.Debug("subscription added",
		logger.Action("subscribe"),
		logger.SubscriptionID(sub.ID()),
		logger.Subscribers(n),
	)
}

func (p *Publisher[M]) logReclaim(id string, remaining int) {
	p.logger.Debug("subscription reclaimed",
		logger.Action("reclaim"),
		logger.SubscriptionID(id),
		logger.Subscribers(remaining),
	)
}
