package stream

import "errors"

// Error kinds reported by streams. Leaf streams wrap the underlying cause
// together with the matching kind, e.g.
//
//	fmt.Errorf("%w: %w", stream.ErrWrite, cause)
//
// so errors.Is matches the kind and errors.As still reaches the cause.
// Filters propagate errors from the streams they wrap unchanged.
var (
	// ErrWrite indicates a sink could not accept or forward bytes.
	ErrWrite = errors.New("write failed")

	// ErrFlush indicates a forced push to the next layer failed.
	ErrFlush = errors.New("flush failed")

	// ErrRead indicates a source reported a medium-level failure.
	// Running out of data is not an error; exhaustion is signaled by a
	// short filled prefix.
	ErrRead = errors.New("read failed")

	// ErrSeek indicates a seek on a Seeker-capable stream failed.
	ErrSeek = errors.New("seek failed")

	// ErrClosed indicates an operation on a closed stream.
	ErrClosed = errors.New("stream is closed")
)
