package pubsub_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pubsub/core/pubsub"
)

func TestSubscription_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("calls cancel with itself once", func(t *testing.T) {
		t.Parallel()

		var calls []*pubsub.Subscription
		sub := pubsub.NewSubscription(func(s *pubsub.Subscription) {
			calls = append(calls, s)
		})

		require.True(t, sub.Active())
		sub.Unsubscribe()
		sub.Unsubscribe()
		sub.Unsubscribe()

		require.Len(t, calls, 1)
		assert.Same(t, sub, calls[0])
		assert.False(t, sub.Active())
	})

	t.Run("nil cancel is allowed", func(t *testing.T) {
		t.Parallel()

		sub := pubsub.NewSubscription(nil)
		assert.NotPanics(t, sub.Unsubscribe)
		assert.False(t, sub.Active())
	})

	t.Run("close implements io.Closer", func(t *testing.T) {
		t.Parallel()

		calls := 0
		var closer io.Closer = pubsub.NewSubscription(func(*pubsub.Subscription) { calls++ })

		require.NoError(t, closer.Close())
		require.NoError(t, closer.Close())
		assert.Equal(t, 1, calls)
	})
}

func TestSubscription_Identity(t *testing.T) {
	t.Parallel()

	cancel := func(*pubsub.Subscription) {}
	a := pubsub.NewSubscription(cancel)
	b := pubsub.NewSubscription(cancel)

	assert.NotSame(t, a, b)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestScoped(t *testing.T) {
	t.Parallel()

	t.Run("unsubscribes on normal return", func(t *testing.T) {
		t.Parallel()

		calls := 0
		sub := pubsub.NewSubscription(func(*pubsub.Subscription) { calls++ })

		err := pubsub.Scoped(sub, func() error {
			assert.True(t, sub.Active())
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.False(t, sub.Active())
	})

	t.Run("returns error and unsubscribes", func(t *testing.T) {
		t.Parallel()

		calls := 0
		sub := pubsub.NewSubscription(func(*pubsub.Subscription) { calls++ })
		errBoom := errors.New("boom")

		err := pubsub.Scoped(sub, func() error { return errBoom })

		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, 1, calls)
	})

	t.Run("unsubscribes when fn panics", func(t *testing.T) {
		t.Parallel()

		calls := 0
		sub := pubsub.NewSubscription(func(*pubsub.Subscription) { calls++ })

		require.PanicsWithValue(t, "boom", func() {
			_ = pubsub.Scoped(sub, func() error { panic("boom") })
		})
		assert.Equal(t, 1, calls)
		assert.False(t, sub.Active())
	})

	t.Run("manual unsubscribe inside scope cancels once", func(t *testing.T) {
		t.Parallel()

		calls := 0
		sub := pubsub.NewSubscription(func(*pubsub.Subscription) { calls++ })

		err := pubsub.Scoped(sub, func() error {
			sub.Unsubscribe()
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}
