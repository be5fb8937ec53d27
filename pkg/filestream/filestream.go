package filestream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fisherro/streams/pkg/stream"
)

// Sink writes to an operating system file.
type Sink struct {
	f      *os.File
	owned  bool
	closed bool
}

// NewSink wraps an open file as a sink. The handle is borrowed; Close
// leaves it open.
func NewSink(f *os.File) *Sink {
	return &Sink{f: f}
}

// Create opens path for writing, truncating any existing contents. The
// sink owns the handle.
func Create(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return &Sink{f: f, owned: true}, nil
}

// Append opens path for appending, creating it if absent. The sink owns
// the handle.
func Append(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Sink{f: f, owned: true}, nil
}

// Write hands p to the file. Failures wrap ErrWrite.
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	n, err := s.f.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", stream.ErrWrite, err)
	}
	return n, nil
}

// Flush is a no-op; writes already reach the kernel. Use Sync to force
// them to stable storage.
func (s *Sink) Flush() error {
	if s.closed {
		return stream.ErrClosed
	}
	return nil
}

// Sync commits the file contents to stable storage. Failures wrap
// ErrFlush.
func (s *Sink) Sync() error {
	if s.closed {
		return stream.ErrClosed
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("%w: %w", stream.ErrFlush, err)
	}
	return nil
}

// Seek repositions the file offset. Failures wrap ErrSeek.
func (s *Sink) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	pos, err := s.f.Seek(offset, whence)
	if err != nil {
		return pos, fmt.Errorf("%w: %w", stream.ErrSeek, err)
	}
	return pos, nil
}

// Name returns the name of the underlying file.
func (s *Sink) Name() string {
	return s.f.Name()
}

// Close marks the sink closed. An owned handle is synced best-effort and
// closed; a borrowed handle is left open. Idempotent.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.owned {
		return nil
	}
	_ = s.f.Sync()
	return s.f.Close()
}

// Source reads from an operating system file.
type Source struct {
	f      *os.File
	owned  bool
	closed bool
}

// NewSource wraps an open file as a source. The handle is borrowed; Close
// leaves it open.
func NewSource(f *os.File) *Source {
	return &Source{f: f}
}

// Open opens path for reading. The source owns the handle.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Source{f: f, owned: true}, nil
}

// Read fills p from the file, gathering partial reads until the slice is
// full or the file ends, so a short return means the remaining data ran
// out. Seeking backward makes the data readable again; there is no
// end-of-file latch. Failures wrap ErrRead.
func (s *Source) Read(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := io.ReadFull(s.f, p)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return n, nil
		}
		return n, fmt.Errorf("%w: %w", stream.ErrRead, err)
	}
	return n, nil
}

// Seek repositions the file offset. Failures wrap ErrSeek.
func (s *Source) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	pos, err := s.f.Seek(offset, whence)
	if err != nil {
		return pos, fmt.Errorf("%w: %w", stream.ErrSeek, err)
	}
	return pos, nil
}

// Name returns the name of the underlying file.
func (s *Source) Name() string {
	return s.f.Name()
}

// Close marks the source closed, closing the handle only when owned.
// Idempotent.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.owned {
		return nil
	}
	return s.f.Close()
}

// Stdin returns a borrowed source over the process standard input.
func Stdin() *Source {
	return NewSource(os.Stdin)
}

// Stdout returns a borrowed sink over the process standard output.
func Stdout() *Sink {
	return NewSink(os.Stdout)
}

// Stderr returns a borrowed sink over the process standard error.
func Stderr() *Sink {
	return NewSink(os.Stderr)
}
