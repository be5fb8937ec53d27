// Command streamcat concatenates inputs through stream compositions: file
// leaves at the edges, buffered filters in the middle, and an optional
// hex-dump view on top.
package main

import (
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Pagers close the pipe early; the copy loop turns the resulting
	// EPIPE into a quiet exit instead of dying on the signal.
	signal.Ignore(syscall.SIGPIPE)

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
