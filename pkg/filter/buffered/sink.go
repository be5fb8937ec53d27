package buffered

import (
	"github.com/fisherro/streams/pkg/stream"
)

// DefaultBufferSize is the buffer capacity used by NewSink and NewSource.
const DefaultBufferSize = 4096

// Sink batches writes in a fixed buffer and forwards them to a downstream
// sink in buffer-sized chunks. The downstream sink is borrowed, never
// closed.
type Sink struct {
	dst    stream.Sink
	buf    []byte // len is the fill, cap the capacity
	closed bool
}

// NewSink creates a buffered sink over dst with the default capacity.
func NewSink(dst stream.Sink) *Sink {
	return NewSinkSize(dst, DefaultBufferSize)
}

// NewSinkSize creates a buffered sink over dst with the given buffer
// capacity. A non-positive size falls back to DefaultBufferSize.
func NewSinkSize(dst stream.Sink, size int) *Sink {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Sink{dst: dst, buf: make([]byte, 0, size)}
}

// Write copies p into the buffer, flushing downstream whenever p outgrows
// the remaining room. A write that exactly fills the buffer does not
// flush; the flush happens on the next write that needs room, or
// explicitly. Returns the number of bytes accepted, which on success is
// all of p.
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	total := 0
	for {
		free := cap(s.buf) - len(s.buf)
		if len(p) <= free {
			s.buf = append(s.buf, p...)
			return total + len(p), nil
		}
		s.buf = append(s.buf, p[:free]...)
		total += free
		p = p[free:]
		if err := s.flush(); err != nil {
			return total, err
		}
	}
}

// Flush writes any buffered bytes downstream and then flushes the
// downstream sink. The downstream flush runs even when the buffer was
// already empty.
func (s *Sink) Flush() error {
	if s.closed {
		return stream.ErrClosed
	}
	return s.flush()
}

func (s *Sink) flush() error {
	if len(s.buf) > 0 {
		n, err := stream.WriteFull(s.dst, s.buf)
		if err != nil {
			// Keep what downstream did not accept so a retry does not
			// deliver the accepted prefix twice.
			s.buf = s.buf[:copy(s.buf, s.buf[n:])]
			return err
		}
		s.buf = s.buf[:0]
	}
	return s.dst.Flush()
}

// Close flushes buffered bytes best-effort, discarding any flush error,
// and marks the sink closed. Later writes fail with ErrClosed. Close is
// idempotent and leaves the downstream sink open.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	_ = s.flush()
	return nil
}

// Buffered returns the number of bytes held back from downstream.
func (s *Sink) Buffered() int {
	return len(s.buf)
}

// Capacity returns the buffer capacity.
func (s *Sink) Capacity() int {
	return cap(s.buf)
}

// Reset discards any buffered bytes and points the sink at a new
// downstream, reopening it if it was closed.
func (s *Sink) Reset(dst stream.Sink) {
	s.dst = dst
	s.buf = s.buf[:0]
	s.closed = false
}
