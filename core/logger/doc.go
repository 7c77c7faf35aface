// Package logger provides slog attribute helpers shared by the packages of this module.
//
// Every helper returns a plain slog.Attr, so it can be passed to any *slog.Logger:
//
//	import "github.com/dmitrymomot/pubsub/core/logger"
//
//	log.Debug("subscription added",
//		logger.Component("pubsub"),
//		logger.SubscriptionID(sub.ID()),
//		logger.Subscribers(n),
//	)
//
// Helpers that take an identifier, an error or a policy name return an empty
// slog.Attr for the zero value. slog omits empty attributes, which makes the
// helpers safe to call unconditionally:
//
//	log.Debug("config loaded", logger.Error(err)) // no "error" key when err == nil
package logger
