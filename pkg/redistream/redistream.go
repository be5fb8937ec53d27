package redistream

import (
	"context"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"

	"github.com/fisherro/streams/pkg/stream"
)

// Sink appends bytes to a Redis string value.
type Sink struct {
	ctx    context.Context
	client redis.UniversalClient
	key    string
	closed bool
}

// NewSink returns a sink that appends to key. The context bounds every
// command the sink issues; the client is borrowed and stays open after
// Close.
func NewSink(ctx context.Context, client redis.UniversalClient, key string) *Sink {
	return &Sink{ctx: ctx, client: client, key: key}
}

// Write appends p to the value. APPEND accepts everything or nothing, so
// a failure reports zero bytes written under ErrWrite.
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if err := s.client.Append(s.ctx, s.key, string(p)).Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", stream.ErrWrite, err)
	}
	return len(p), nil
}

// Flush succeeds immediately. Appends are visible server-side as soon as
// Write returns.
func (s *Sink) Flush() error {
	if s.closed {
		return stream.ErrClosed
	}
	return nil
}

// Len reports the current value length via STRLEN. A missing key has
// length zero.
func (s *Sink) Len() (int64, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	return s.client.StrLen(s.ctx, s.key).Result()
}

// Reset deletes the value so the next write starts a fresh one.
func (s *Sink) Reset() error {
	if s.closed {
		return stream.ErrClosed
	}
	return s.client.Del(s.ctx, s.key).Err()
}

// Key returns the Redis key the sink appends to.
func (s *Sink) Key() string {
	return s.key
}

// Close marks the sink closed. The client belongs to the caller and is
// left open. Idempotent.
func (s *Sink) Close() error {
	s.closed = true
	return nil
}

// Source pages through a Redis string value. It implements stream.Seeker.
type Source struct {
	ctx    context.Context
	client redis.UniversalClient
	key    string
	pos    int64
	closed bool
}

// NewSource returns a source positioned at the start of key. A missing
// key reads as empty.
func NewSource(ctx context.Context, client redis.UniversalClient, key string) *Source {
	return &Source{ctx: ctx, client: client, key: key}
}

// Read fetches the next page with GETRANGE and advances past it. A short
// page means the end of the value; if the value grows afterward, the next
// read continues from the same offset and finds the new bytes.
func (s *Source) Read(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	val, err := s.client.GetRange(s.ctx, s.key, s.pos, s.pos+int64(len(p))-1).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", stream.ErrRead, err)
	}
	n := copy(p, val)
	s.pos += int64(n)
	return n, nil
}

// Seek repositions the read offset. io.SeekEnd resolves the value length
// with STRLEN at call time. A negative resulting offset wraps ErrSeek;
// seeking past the end is allowed and reads zero bytes.
func (s *Source) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}

	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = s.pos + offset
	case io.SeekEnd:
		size, err := s.client.StrLen(s.ctx, s.key).Result()
		if err != nil {
			return s.pos, fmt.Errorf("%w: %w", stream.ErrSeek, err)
		}
		pos = size + offset
	default:
		return s.pos, fmt.Errorf("%w: unknown whence %d", stream.ErrSeek, whence)
	}

	if pos < 0 {
		return s.pos, fmt.Errorf("%w: negative offset %d", stream.ErrSeek, pos)
	}
	s.pos = pos
	return pos, nil
}

// Len reports the current value length via STRLEN.
func (s *Source) Len() (int64, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	return s.client.StrLen(s.ctx, s.key).Result()
}

// Key returns the Redis key the source reads from.
func (s *Source) Key() string {
	return s.key
}

// Close marks the source closed. The client belongs to the caller and is
// left open. Idempotent.
func (s *Source) Close() error {
	s.closed = true
	return nil
}
