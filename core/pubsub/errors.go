package pubsub

import "errors"

// ErrNilSubscriber is the panic value of Subscribe and SubscribeContext when called with a nil callback.
var ErrNilSubscriber = errors.New("pubsub: nil subscriber")
