/*
Package streams provides small, composable byte-stream contracts and the
sinks, sources, and filters that implement them.

Core Contracts (pkg/stream):
  - Sink: Write plus Flush, with WriteFull for partial acceptance
  - Source: Read where a short fill means exhaustion, never io.EOF
  - Seeker: optional repositioning, discovered by type assertion
  - adapters to and from io.Reader and io.Writer

Filters (pkg/filter):
  - buffered: write batching and read-ahead over any stream
  - unget: byte pushback for scanners and parsers
  - metered: Prometheus counters around any stream

Leaves:
  - memstream: growable, fixed, and read-only in-memory streams
  - filestream: files, process stdio, and cron-scheduled rotation
  - execstream: subprocess stdin and stdout as streams
  - mmapstream: memory-mapped read-only file source (unix)
  - redistream: a Redis string value as a shared stream

Example usage:

	import (
		"github.com/fisherro/streams/pkg/filestream"
		"github.com/fisherro/streams/pkg/filter/buffered"
		"github.com/fisherro/streams/pkg/stream"
	)

	dst, _ := filestream.Create("out.log")
	sink := buffered.NewSink(dst)

	stream.WriteLine(sink, "hello")
	sink.Flush()
	dst.Close()
*/
package streams
