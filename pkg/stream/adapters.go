package stream

import (
	"errors"
	"fmt"
	"io"
)

// Adapters between the stream contracts and the stdlib io interfaces. The
// two worlds disagree on what a short read means, so each direction does a
// real translation rather than a cast.

// FromReader adapts an io.Reader into a Source. Each Read fills p
// completely unless the reader runs out, so a short return carries the
// exhaustion meaning the Source contract requires. io.EOF and
// io.ErrUnexpectedEOF are structural and never surface as errors; anything
// else wraps ErrRead.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

type readerSource struct {
	r         io.Reader
	exhausted bool
}

func (rs *readerSource) Read(p []byte) (int, error) {
	if rs.exhausted || len(p) == 0 {
		return 0, nil
	}
	n, err := io.ReadFull(rs.r, p)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			rs.exhausted = true
			return n, nil
		}
		return n, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return n, nil
}

// FromWriter adapts an io.Writer into a Sink. Flush delegates to the
// writer's own Flush method when it has one (a bufio.Writer, for example)
// and is a no-op otherwise. Write failures wrap ErrWrite, flush failures
// ErrFlush.
func FromWriter(w io.Writer) Sink {
	return &writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (ws *writerSink) Write(p []byte) (int, error) {
	n, err := ws.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return n, nil
}

func (ws *writerSink) Flush() error {
	f, ok := ws.w.(interface{ Flush() error })
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	return nil
}

// AsReader adapts a Source into an io.Reader. A short fill marks the
// source exhausted; the remaining bytes are returned first and every call
// after that reports io.EOF.
func AsReader(src Source) io.Reader {
	return &sourceReader{src: src}
}

type sourceReader struct {
	src       Source
	exhausted bool
}

func (sr *sourceReader) Read(p []byte) (int, error) {
	if sr.exhausted {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := sr.src.Read(p)
	if err != nil {
		return n, err
	}
	if n < len(p) {
		sr.exhausted = true
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n, nil
}

// AsWriter adapts a Sink into an io.Writer with WriteFull semantics, so
// io.Copy and friends never see a silent short write.
func AsWriter(s Sink) io.Writer {
	return &sinkWriter{s: s}
}

type sinkWriter struct {
	s Sink
}

func (sw *sinkWriter) Write(p []byte) (int, error) {
	return WriteFull(sw.s, p)
}
