package pubsub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pubsub/core/config"
	"github.com/dmitrymomot/pubsub/core/pubsub"
)

func TestNewFromConfig(t *testing.T) {
	t.Setenv("PUBSUB_PERSIST", "true")

	var cfg pubsub.Config
	require.NoError(t, config.Load(&cfg))
	require.True(t, cfg.Persist)

	publisher := pubsub.NewFromConfig[string](cfg)
	assert.True(t, publisher.Persistent())

	subscriber := &spySubscriber{}
	subscribeAndDrop(publisher, subscriber.receive)
	forceReclaim()
	publisher.Publish("m1")
	assert.Equal(t, []string{"m1"}, subscriber.received())
}

func TestNewFromConfig_OptionsOverrideConfig(t *testing.T) {
	t.Parallel()

	publisher := pubsub.NewFromConfig[string](pubsub.Config{Persist: true}, pubsub.WithPersist(false))
	assert.False(t, publisher.Persistent())

	assert.False(t, pubsub.NewFromConfig[string](pubsub.Config{}).Persistent())
}
