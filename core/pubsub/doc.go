// Package pubsub provides a small in-process publish/subscribe primitive.
//
// A Publisher keeps a registry of callbacks for a single message type and
// calls all of them synchronously on Publish. Subscribe returns a
// Subscription handle that cancels delivery for that one callback.
//
// # Basic Usage
//
//	publisher := pubsub.New[string]()
//
//	sub := publisher.Subscribe(func(msg string) {
//		fmt.Println(msg)
//	})
//	publisher.Publish("hello") // printed
//
//	sub.Unsubscribe()
//	publisher.Publish("hi") // not printed
//
// Unsubscribing is idempotent: Subscription.Unsubscribe, Subscription.Close
// and Publisher.Unsubscribe may be called any number of times. UnsubscribeAll
// clears the registry in one step.
//
// # Scoped Subscriptions
//
// A Subscription is an io.Closer, so the usual defer pattern applies:
//
//	sub := publisher.Subscribe(handler)
//	defer sub.Close()
//
// Scoped runs a function and unsubscribes on every exit path, panics included:
//
//	err := pubsub.Scoped(publisher.Subscribe(handler), func() error {
//		publisher.Publish("hello") // delivered
//		return nil
//	})
//	publisher.Publish("hi") // not delivered
//
// SubscribeContext ties a subscription to a context instead:
//
//	sub := publisher.SubscribeContext(ctx, handler) // cancelled when ctx is done
//
// # Storage Policies
//
// By default the registry references subscriptions weakly. When the caller
// drops the last reference to a Subscription, the garbage collector reclaims it
// and its callback stops receiving messages. Unsubscribe is not called in that
// case. This prevents a forgotten Unsubscribe from leaking the callback, but
// the exact moment depends on the garbage collector; explicit unsubscription
// is still recommended.
//
//	func subscribe(publisher *pubsub.Publisher[string]) {
//		publisher.Subscribe(handler) // handle discarded
//	}
//
//	subscribe(publisher)
//	runtime.GC()
//	publisher.Publish("hi") // not delivered
//
// A callback that captures its own Subscription keeps it reachable, so such a
// subscription is never reclaimed automatically.
//
// WithPersist(true) makes the publisher own its subscriptions. They stay
// registered until Unsubscribe or UnsubscribeAll:
//
//	publisher := pubsub.New[string](pubsub.WithPersist(true))
//	subscribe(publisher)
//	publisher.Publish("hello") // delivered
//	publisher.UnsubscribeAll()
//
// The policy can also come from the environment (PUBSUB_PERSIST) through
// Config and the config package:
//
//	var cfg pubsub.Config
//	config.MustLoad(&cfg)
//	publisher := pubsub.NewFromConfig[string](cfg)
//
// # Delivery Semantics
//
// Publish calls subscribers one after another on the caller's goroutine and
// returns when all of them have returned. The order between subscribers is
// unspecified. The subscriber set is copied before delivery starts, so
// subscribing or unsubscribing from inside a callback affects the next
// Publish, not the current one.
//
// Panics raised by subscribers are not recovered; the remaining subscribers
// of that Publish call are skipped.
//
// # Thread Safety
//
// Publisher and Subscription are safe for concurrent use. The registry is
// guarded by a mutex that is released before any subscriber runs, so
// subscribers may call back into the publisher.
package pubsub
