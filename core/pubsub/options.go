package pubsub

import "log/slog"

type options struct {
	persist bool
	logger  *slog.Logger
}

// Option configures a Publisher.
type Option func(*options)

// WithPersist selects the storage policy.
// With persist set to true the publisher keeps every subscription until it is
// unsubscribed explicitly. The default (false) drops a subscription
// automatically once the caller no longer references it.
func WithPersist(persist bool) Option {
	return func(o *options) {
		o.persist = persist
	}
}

// WithLogger configures structured logging for subscription lifecycle events.
// Records are emitted at debug level. If not set, logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
