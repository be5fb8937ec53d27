package stream

import (
	"fmt"
	"io"
)

// Sink is the minimal write capability a byte destination exposes.
type Sink interface {
	// Write forwards bytes toward the eventual destination and returns
	// the number of bytes accepted. Most sinks accept the whole slice or
	// fail with an error wrapping ErrWrite; a bounded sink such as
	// memstream.FixedSink may instead accept a prefix (or nothing) with a
	// nil error. Callers that need full acceptance use WriteFull.
	Write(p []byte) (int, error)

	// Flush pushes any sink-owned buffering to the next layer down.
	// Sinks that do no buffering of their own return nil. Failures wrap
	// ErrFlush.
	Flush() error
}

// Source is the minimal read capability a byte origin exposes.
type Source interface {
	// Read fills p with as many bytes as the source can provide and
	// returns the length of the filled prefix. A return of n < len(p)
	// signals exhaustion; errors wrapping ErrRead are reserved for medium
	// failures. io.EOF is never returned.
	Read(p []byte) (int, error)
}

// Seeker is the optional repositioning capability. Streams backed by a
// seekable medium implement it in addition to Sink or Source; discover it
// with a type assertion. Whence is io.SeekStart, io.SeekCurrent, or
// io.SeekEnd. Failures wrap ErrSeek.
type Seeker interface {
	Seek(offset int64, whence int) (int64, error)
}

// Tell reports the current offset of a seekable stream.
func Tell(s Seeker) (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

// WriteFull writes all of p to s, looping over partial acceptance. It
// returns the number of bytes accepted and the first error encountered. A
// sink that accepts nothing while reporting no error (a full bounded sink)
// yields an error wrapping ErrWrite and io.ErrShortWrite.
func WriteFull(s Sink, p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		n, err := s.Write(p)
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, fmt.Errorf("%w: %w", ErrWrite, io.ErrShortWrite)
		}
		p = p[n:]
	}
	return total, nil
}

// copyChunkSize is the transfer buffer used by Copy and Skip.
const copyChunkSize = 4096

// Copy pumps src into dst until the source is exhausted, returning the
// number of bytes transferred. Write errors and read errors abort the copy
// with the count of bytes already delivered to dst.
func Copy(dst Sink, src Source) (int64, error) {
	buf := make([]byte, copyChunkSize)
	var written int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := WriteFull(dst, buf[:n])
			written += int64(w)
			if werr != nil {
				return written, werr
			}
		}
		if rerr != nil {
			return written, rerr
		}
		if n < len(buf) {
			return written, nil
		}
	}
}
