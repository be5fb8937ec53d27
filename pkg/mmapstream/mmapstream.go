//go:build unix

// Package mmapstream provides a memory-mapped file source. The whole file
// is mapped read-only at open and reads copy straight out of the mapping,
// making it the cheapest way to stream a large file that is already on
// disk. Unix only.
package mmapstream

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/fisherro/streams/pkg/stream"
)

// Source reads from a memory-mapped file. It implements stream.Seeker.
type Source struct {
	data   []byte
	pos    int64
	closed bool
}

// Open maps path read-only. The file handle is closed as soon as the
// mapping exists; an empty file yields an empty source rather than an
// error, since zero-length mappings are not a thing the kernel provides.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Source{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &Source{data: data}, nil
}

// Read copies the next bytes out of the mapping and advances. A short
// return means the end of the mapping; seeking backward makes the data
// readable again.
func (s *Source) Read(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	if s.pos >= int64(len(s.data)) {
		return 0, nil
	}
	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)
	return n, nil
}

// Seek repositions the read offset. A negative resulting offset wraps
// ErrSeek; an offset past the end is allowed and reads zero bytes.
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
		pos = int64(len(s.data)) + offset
	default:
		return s.pos, fmt.Errorf("%w: unknown whence %d", stream.ErrSeek, whence)
	}

	if pos < 0 {
		return s.pos, fmt.Errorf("%w: negative offset %d", stream.ErrSeek, pos)
	}
	s.pos = pos
	return pos, nil
}

// Bytes returns the whole mapping without copying. The slice dies with
// Close; callers must not retain it past the source.
func (s *Source) Bytes() []byte {
	return s.data
}

// Size returns the mapped length in bytes.
func (s *Source) Size() int64 {
	return int64(len(s.data))
}

// Close unmaps the file. Idempotent; reads after Close fail with
// ErrClosed.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.data == nil {
		return nil
	}
	data := s.data
	s.data = nil
	return unix.Munmap(data)
}
