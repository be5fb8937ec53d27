// Package memstream provides in-memory sinks and sources. They are the
// leaves used when the destination or origin of a pipeline is a byte slice
// rather than an external medium, and they never fail.
package memstream

import "bytes"

// Sink collects written bytes in a growable buffer. It accepts every write
// in full and never returns an error.
type Sink struct {
	buf bytes.Buffer
}

// New creates an empty growable sink.
func New() *Sink {
	return &Sink{}
}

// Write appends p to the buffer. It always accepts all of p.
func (s *Sink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush is a no-op; the bytes are already at their destination.
func (s *Sink) Flush() error {
	return nil
}

// Bytes returns the collected bytes. The slice is valid until the next
// write or reset.
func (s *Sink) Bytes() []byte {
	return s.buf.Bytes()
}

// String returns the collected bytes as a string.
func (s *Sink) String() string {
	return s.buf.String()
}

// Len returns the number of bytes collected.
func (s *Sink) Len() int {
	return s.buf.Len()
}

// Reset discards the collected bytes.
func (s *Sink) Reset() {
	s.buf.Reset()
}

// FixedSink writes into a caller-provided buffer. Once the buffer is full
// it short-writes, accepting nothing with a nil error; running out of room
// is a structural condition here, not a failure.
type FixedSink struct {
	buf []byte
	n   int
}

// NewFixedSink creates a sink writing into buf. The caller keeps ownership
// of the slice and can read the written prefix through it directly.
func NewFixedSink(buf []byte) *FixedSink {
	return &FixedSink{buf: buf}
}

// Write copies as much of p as fits and returns the number of bytes
// accepted. When the buffer is full it returns 0, nil.
func (s *FixedSink) Write(p []byte) (int, error) {
	n := copy(s.buf[s.n:], p)
	s.n += n
	return n, nil
}

// Flush is a no-op.
func (s *FixedSink) Flush() error {
	return nil
}

// Bytes returns the written prefix of the buffer.
func (s *FixedSink) Bytes() []byte {
	return s.buf[:s.n]
}

// Unused returns the free suffix of the buffer.
func (s *FixedSink) Unused() []byte {
	return s.buf[s.n:]
}

// Len returns the number of bytes written so far.
func (s *FixedSink) Len() int {
	return s.n
}

// Source serves bytes from a slice. The fill runs short exactly when the
// remaining data runs out; after that every read returns 0.
type Source struct {
	data []byte
}

// NewSource creates a source over data. The source reads through the slice
// without copying it, so the caller must not mutate it mid-read.
func NewSource(data []byte) *Source {
	return &Source{data: data}
}

// Read copies the next bytes into p and advances past them.
func (s *Source) Read(p []byte) (int, error) {
	n := copy(p, s.data)
	s.data = s.data[n:]
	return n, nil
}

// Remaining returns the number of unread bytes.
func (s *Source) Remaining() int {
	return len(s.data)
}
