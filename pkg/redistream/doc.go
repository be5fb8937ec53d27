// Package redistream provides leaf streams backed by a Redis string value.
//
// A Sink appends to the value with APPEND and a Source pages through it
// with GETRANGE, so several processes can produce and consume the same
// key without coordinating beyond Redis itself. The value is the medium;
// this package stays synchronous and leaves pipelining, retries, and
// connection pooling to the client.
//
// Basic usage:
//
//	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	sink := redistream.NewSink(ctx, rdb, "logs:ingest")
//	_, err := sink.Write([]byte("payload"))
//
// # Visibility
//
// APPEND makes bytes visible to every reader as soon as it returns, so
// Flush has nothing to do and always succeeds. A Source that has drained
// the value reads short; if the value grows later, the next read picks up
// the new bytes from where the source left off.
//
// # Seeking
//
// Source implements stream.Seeker. io.SeekEnd resolves the value length
// with STRLEN at seek time, which makes it the one seekable network leaf
// in this module.
//
// The context passed at construction bounds every command the stream
// issues. The client is borrowed: Close marks the stream closed but
// leaves the client open for its owner.
package redistream
