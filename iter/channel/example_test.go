package channel_test

import (
	"context"
	"fmt"

	"github.com/jake-scott/go-progress/iter/channel"
)

func ExampleIterator() {
	ctx := context.Background()

	ch := make(chan int)
	go func() {
		for i := 1; i <= 5; i++ {
			ch <- i * i
		}

		close(ch)
	}()

	iter := channel.New(ch)
	for iter.Next(ctx) {
		fmt.Printf("item: %d\n", iter.Get())
	}

	if err := iter.Error(); err != nil {
		panic(err)
	}

	// output:
	// item: 1
	// item: 4
	// item: 9
	// item: 16
	// item: 25
}
