package pubsub_test

import (
	"bytes"
	"runtime"
	"sync"
	"testing"

	"github.com/neilotoole/slogt"

	"github.com/dmitrymomot/pubsub/core/pubsub"
)

// spySubscriber records every message it receives.
type spySubscriber struct {
	mu       sync.Mutex
	messages []string
}

func (s *spySubscriber) receive(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *spySubscriber) received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}

// policies lists both storage policies so behaviour shared by them is tested once.
var policies = []struct {
	name    string
	persist bool
}{
	{name: "weak", persist: false},
	{name: "persistent", persist: true},
}

func newPublisher(t *testing.T, persist bool) *pubsub.Publisher[string] {
	t.Helper()
	p := pubsub.New[string](
		pubsub.WithPersist(persist),
		pubsub.WithLogger(slogt.New(t)),
	)
	// Pending runtime cleanups must not log through t after the test has finished.
	t.Cleanup(p.UnsubscribeAll)
	return p
}

// subscribeAndDrop subscribes fn and discards the handle before returning.
//
//go:noinline
func subscribeAndDrop(p *pubsub.Publisher[string], fn func(string)) {
	p.Subscribe(fn)
}

// forceReclaim runs full collection cycles so unreachable subscriptions are freed.
func forceReclaim() {
	runtime.GC()
	runtime.GC()
}

// syncBuffer is a bytes.Buffer safe for a slog handler writing from the runtime cleanup goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
