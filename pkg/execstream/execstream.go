// Package execstream provides subprocess-backed streams. A Sink feeds a
// command's standard input; a Source reads a command's standard output.
// Closing either waits for the command and reports a failed exit, so a
// pipeline notices when the far end died.
package execstream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/fisherro/streams/pkg/stream"
)

// Sink feeds the standard input of a subprocess. The subprocess writes its
// own output and errors through to the caller's.
type Sink struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	closed bool
}

// NewSink starts the command with a pipe to its standard input.
func NewSink(name string, arg ...string) (*Sink, error) {
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Sink{cmd: cmd, stdin: stdin}, nil
}

// Write feeds p to the subprocess. Failures, a broken pipe included, wrap
// ErrWrite.
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	n, err := s.stdin.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %w", stream.ErrWrite, err)
	}
	return n, nil
}

// Flush is a no-op; the pipe carries no stream-side buffering.
func (s *Sink) Flush() error {
	if s.closed {
		return stream.ErrClosed
	}
	return nil
}

// Close closes the pipe, letting the subprocess see end of input, then
// waits for it to exit. A failed exit is returned as the *exec.ExitError.
// Idempotent; later calls return nil.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	_ = s.stdin.Close()
	return s.cmd.Wait()
}

// Source reads the standard output of a subprocess. The subprocess reads
// the caller's standard input and writes errors through to the caller's.
type Source struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	closed bool
}

// NewSource starts the command with a pipe from its standard output.
func NewSource(name string, arg ...string) (*Source, error) {
	cmd := exec.Command(name, arg...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Source{cmd: cmd, stdout: stdout}, nil
}

// Read fills p from the subprocess output, gathering the pipe's routine
// partial reads until the slice is full or the output ends. A short return
// means the subprocess is done writing. Failures wrap ErrRead.
func (s *Source) Read(p []byte) (int, error) {
	if s.closed {
		return 0, stream.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := io.ReadFull(s.stdout, p)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return n, nil
		}
		return n, fmt.Errorf("%w: %w", stream.ErrRead, err)
	}
	return n, nil
}

// Close drains any output still in flight so the subprocess can finish,
// then waits for it. A failed exit is returned as the *exec.ExitError.
// Idempotent; later calls return nil.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	_, _ = io.Copy(io.Discard, s.stdout)
	return s.cmd.Wait()
}
