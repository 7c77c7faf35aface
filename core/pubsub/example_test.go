package pubsub_test

import (
	"fmt"

	"github.com/dmitrymomot/pubsub/core/pubsub"
)

func Example() {
	publisher := pubsub.New[string]()

	sub := publisher.Subscribe(func(msg string) {
		fmt.Println(msg)
	})
	publisher.Publish("hello")

	sub.Unsubscribe()
	publisher.Publish("hi")
	// Output: hello
}

func ExampleScoped() {
	publisher := pubsub.New[string]()
	printMsg := func(msg string) { fmt.Println(msg) }

	_ = pubsub.Scoped(publisher.Subscribe(printMsg), func() error {
		publisher.Publish("hello")
		return nil
	})
	publisher.Publish("hi")
	// Output: hello
}

func ExampleWithPersist() {
	publisher := pubsub.New[int](pubsub.WithPersist(true))

	total := 0
	publisher.Subscribe(func(n int) { total += n }) // handle discarded on purpose
	publisher.Publish(1)
	publisher.Publish(2)
	publisher.UnsubscribeAll()
	publisher.Publish(3)

	fmt.Println(total)
	// Output: 3
}
