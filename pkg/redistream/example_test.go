package redistream

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Example demonstrates appending to a shared key and reading it back.
func Example() {
	rdb := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})
	defer func() { _ = rdb.Close() }()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		fmt.Println("Redis not available, skipping example")
		return
	}

	key := "streams:example:greeting"
	defer func() { _ = rdb.Del(ctx, key).Err() }()

	sink := NewSink(ctx, rdb, key)
	if err := sink.Reset(); err != nil {
		fmt.Println("reset failed:", err)
		return
	}
	if _, err := sink.Write([]byte("shared bytes")); err != nil {
		fmt.Println("write failed:", err)
		return
	}

	src := NewSource(ctx, rdb, key)
	p := make([]byte, 32)
	n, err := src.Read(p)
	if err != nil {
		fmt.Println("read failed:", err)
		return
	}

	fmt.Printf("%s (%d bytes)\n", p[:n], n)
	// Output varies: prints the skip notice without a local Redis, the
	// value otherwise.
}
