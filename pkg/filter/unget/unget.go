// Package unget provides a pushback filter over any source. Parsers use it
// to peek ahead and return bytes they decide not to consume.
//
// Pushback is a per-byte LIFO stack: the last byte pushed is the first byte
// read back. Within one multi-byte Unget the view therefore reads back
// reversed; callers that want a chunk re-read in order push it byte by byte
// back to front, or simply re-read what they push in the mirrored order.
package unget

import (
	"github.com/fisherro/streams/pkg/stream"
)

// Source wraps an upstream source with a pushback stack. The upstream
// source is borrowed.
type Source struct {
	src   stream.Source
	stack []byte
}

// New creates a pushback source over src.
func New(src stream.Source) *Source {
	return &Source{src: src}
}

// Unget pushes the bytes of p onto the pushback stack. The bytes need not
// have come from this stream; nothing is validated. They are served back
// before any upstream data, last pushed first.
func (s *Source) Unget(p []byte) {
	s.stack = append(s.stack, p...)
}

// Read pops pushed-back bytes off the stack first, then fills any
// remaining room with a single upstream read. There is no exhaustion
// latch: a later Unget revives a drained stream.
func (s *Source) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) && len(s.stack) > 0 {
		last := len(s.stack) - 1
		p[total] = s.stack[last]
		s.stack = s.stack[:last]
		total++
	}
	if total < len(p) {
		n, err := s.src.Read(p[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Pending returns the number of pushed-back bytes not yet re-read.
func (s *Source) Pending() int {
	return len(s.stack)
}
