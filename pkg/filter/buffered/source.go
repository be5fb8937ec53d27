package buffered

import (
	"github.com/fisherro/streams/pkg/stream"
)

// Source reads ahead from an upstream source in buffer-sized fills and
// serves callers from the buffered window. The upstream source is
// borrowed.
//
// A fill shorter than the buffer capacity latches permanent exhaustion;
// see the package doc for the restriction this places on the upstream.
type Source struct {
	src       stream.Source
	buf       []byte // backing buffer, len == cap
	window    []byte // unconsumed view into buf
	exhausted bool
}

// NewSource creates a buffered source over src with the default capacity.
func NewSource(src stream.Source) *Source {
	return NewSourceSize(src, DefaultBufferSize)
}

// NewSourceSize creates a buffered source over src with the given buffer
// capacity. A non-positive size falls back to DefaultBufferSize.
func NewSourceSize(src stream.Source, size int) *Source {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Source{src: src, buf: make([]byte, size)}
}

// Read serves bytes from the window, refilling it from upstream as needed.
// Each refill is a single upstream read into the full buffer; a short fill
// latches exhaustion, and the bytes it did produce are still served. After
// the latch, once the window drains, every call returns 0 without
// consulting upstream.
func (s *Source) Read(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if len(s.window) == 0 {
			if s.exhausted {
				break
			}
			n, err := s.src.Read(s.buf)
			if err != nil {
				return total, err
			}
			if n < len(s.buf) {
				s.exhausted = true
			}
			s.window = s.buf[:n]
			if n == 0 {
				break
			}
		}
		n := copy(p, s.window)
		s.window = s.window[n:]
		p = p[n:]
		total += n
	}
	return total, nil
}

// Buffered returns the number of bytes read ahead but not yet consumed.
func (s *Source) Buffered() int {
	return len(s.window)
}

// Capacity returns the buffer capacity.
func (s *Source) Capacity() int {
	return len(s.buf)
}

// Exhausted reports whether the upstream latch has tripped. Buffered bytes
// may remain readable after it does.
func (s *Source) Exhausted() bool {
	return s.exhausted
}
