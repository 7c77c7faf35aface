package logger

import "log/slog"

// Attribute helpers return an empty Attr for zero values, so calls like
// log.Debug("msg", logger.Error(err)) need no nil checks. slog drops empty
// attributes when rendering.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action creates an attribute for the lifecycle action being logged
// (subscribe, unsubscribe, reclaim).
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// SubscriptionID creates an attribute for a subscription's correlation id.
func SubscriptionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("subscription_id", id)
}

// Subscribers reports how many subscribers a publisher currently holds.
func Subscribers(n int) slog.Attr {
	return slog.Int("subscribers", n)
}

// Policy creates an attribute for a publisher's storage policy.
func Policy(policy string) slog.Attr {
	if policy == "" {
		return slog.Attr{}
	}
	return slog.String("policy", policy)
}
