package testutil

import (
	"bytes"
	"errors"
	"time"
)

// errSimulated is the default failure injected by SetErrorOnNth.
var errSimulated = errors.New("simulated failure")

// MockClock implements a Clock with controllable time. Rotation tests use it
// to cross schedule boundaries without actual delays.
type MockClock struct {
	now time.Time
}

// NewMockClock creates a new MockClock starting at the given time.
// If zero time is provided, uses current time.
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now()
	}
	return &MockClock{now: start}
}

// Now returns the current mock time.
func (m *MockClock) Now() time.Time {
	return m.now
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.now = t
}

// RecordingSink is a test sink that captures everything written to it,
// records the size of each write, and can simulate write and flush failures.
type RecordingSink struct {
	buf        bytes.Buffer
	writes     []int
	flushes    int
	errorOnNth int
	writeErr   error
	flushErr   error
}

// NewRecordingSink creates a new RecordingSink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// Write implements stream.Sink with configurable failure behavior.
func (rs *RecordingSink) Write(p []byte) (int, error) {
	rs.writes = append(rs.writes, len(p))

	if rs.writeErr != nil {
		return 0, rs.writeErr
	}

	if rs.errorOnNth > 0 && len(rs.writes) == rs.errorOnNth {
		return 0, errSimulated
	}

	return rs.buf.Write(p)
}

// Flush implements stream.Sink, failing when a flush error is configured.
func (rs *RecordingSink) Flush() error {
	rs.flushes++
	return rs.flushErr
}

// Bytes returns the accumulated sink contents.
func (rs *RecordingSink) Bytes() []byte {
	return rs.buf.Bytes()
}

// String returns the accumulated sink contents as a string.
func (rs *RecordingSink) String() string {
	return rs.buf.String()
}

// Len returns the number of bytes accumulated.
func (rs *RecordingSink) Len() int {
	return rs.buf.Len()
}

// Writes returns the recorded size of each Write call, including failed ones.
func (rs *RecordingSink) Writes() []int {
	return rs.writes
}

// WriteCount returns the number of Write calls.
func (rs *RecordingSink) WriteCount() int {
	return len(rs.writes)
}

// Flushes returns the number of Flush calls.
func (rs *RecordingSink) Flushes() int {
	return rs.flushes
}

// SetErrorOnNth configures the sink to fail the nth Write call.
func (rs *RecordingSink) SetErrorOnNth(n int) {
	rs.errorOnNth = n
}

// SetAlwaysError configures the sink to fail every Write with err.
func (rs *RecordingSink) SetAlwaysError(err error) {
	rs.writeErr = err
}

// SetFlushError configures the sink to fail every Flush with err.
func (rs *RecordingSink) SetFlushError(err error) {
	rs.flushErr = err
}

// Reset clears the contents, recordings, and failure configuration.
func (rs *RecordingSink) Reset() {
	rs.buf.Reset()
	rs.writes = nil
	rs.flushes = 0
	rs.errorOnNth = 0
	rs.writeErr = nil
	rs.flushErr = nil
}

// ScriptedSource is a test source that serves a fixed script of chunks, one
// chunk per Read call, and counts how often it is consulted. A chunk larger
// than the caller's slice is truncated; the excess is dropped, not carried
// over. Once the script runs out every Read returns an empty fill.
type ScriptedSource struct {
	chunks     [][]byte
	calls      int
	errorOnNth int
	err        error
}

// NewScriptedSource creates a ScriptedSource serving the given chunks in order.
func NewScriptedSource(chunks ...[]byte) *ScriptedSource {
	return &ScriptedSource{chunks: chunks}
}

// Read implements stream.Source, serving the next scripted chunk.
func (ss *ScriptedSource) Read(p []byte) (int, error) {
	ss.calls++

	if ss.errorOnNth > 0 && ss.calls == ss.errorOnNth {
		if ss.err != nil {
			return 0, ss.err
		}
		return 0, errSimulated
	}

	if len(ss.chunks) == 0 {
		return 0, nil
	}

	chunk := ss.chunks[0]
	ss.chunks = ss.chunks[1:]
	return copy(p, chunk), nil
}

// Calls returns the number of Read calls, including failed ones.
func (ss *ScriptedSource) Calls() int {
	return ss.calls
}

// SetErrorOnNth configures the source to fail the nth Read call with err.
func (ss *ScriptedSource) SetErrorOnNth(n int, err error) {
	ss.errorOnNth = n
	ss.err = err
}
