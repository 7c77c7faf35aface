package pubsub

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/pubsub/core/logger"
)

// Decorator wraps a subscriber callback to add cross-cutting behaviour.
// It follows the same pattern as HTTP middleware.
type Decorator[M any] func(func(M)) func(M)

// ApplyDecorators wraps fn with decorators. The first decorator becomes the
// outermost wrapper and runs first.
//
// Example:
//
//	publisher.Subscribe(pubsub.ApplyDecorators(
//	    handler,
//	    pubsub.Recover[Event](log),
//	    pubsub.Filter(func(e Event) bool { return e.Important }),
//	))
//
// Execution order: Recover -> Filter -> handler
func ApplyDecorators[M any](fn func(M), decorators ...Decorator[M]) func(M) {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// Recover isolates a subscriber: a panic inside it is logged at error level
// and swallowed, so the remaining subscribers of the same Publish still run.
// A nil log discards the record.
func Recover[M any](log *slog.Logger) Decorator[M] {
	return func(next func(M)) func(M) {
		return func(msg M) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if log != nil {
					log.Error("subscriber panicked",
						logger.Component("pubsub"),
						logger.Group("subscriber",
							logger.Error(fmt.Errorf("panic: %v", r)),
							slog.String("message_type", fmt.Sprintf("%T", msg)),
						),
					)
				}
			}()
			next(msg)
		}
	}
}

// Filter passes only the messages for which keep returns true.
func Filter[M any](keep func(M) bool) Decorator[M] {
	return func(next func(M)) func(M) {
		return func(msg M) {
			if keep(msg) {
				next(msg)
			}
		}
	}
}
