/*
Package stream defines the sink and source contracts that every stream in
this module implements, the error kinds they report, and the helpers built
on top of the raw byte contracts.

The contracts are deliberately small. A Sink accepts bytes and can be asked
to push them onward; a Source fills a caller-provided slice and reports how
much of it was filled:

	type Sink interface {
		Write(p []byte) (int, error)
		Flush() error
	}

	type Source interface {
		Read(p []byte) (int, error)
	}

# Short reads mean exhaustion

Source.Read returns the length of the filled prefix. A return of n < len(p)
means the source is exhausted; there is no io.EOF. This is the one place the
contract differs from io.Reader, where short reads are routine. Errors are
reserved for medium failures (a disk error, a broken pipe), never for
running out of data. The FromReader and AsReader adapters translate between
the two conventions.

# Composition

Filters (see the filter packages) wrap a Sink or Source and expose the same
contract, so composition is closed: a buffered sink around a file sink is
itself a Sink. Leaf streams (memstream, filestream, execstream, mmapstream,
redistream) talk to a concrete medium and sit at the bottom of a chain.

	dst, _ := filestream.Create("out.dat")
	defer dst.Close()
	w := buffered.NewSink(dst)
	defer w.Close()

	stream.WriteString(w, "hello")

# Error kinds

Failures carry one of the sentinel kinds ErrWrite, ErrFlush, ErrRead,
ErrSeek, or ErrClosed, wrapped together with the underlying cause, so both
classification and inspection work:

	if errors.Is(err, stream.ErrRead) { ... }

# Seeking

Seeking is a capability, not part of the stream contracts. Streams that can
seek additionally implement Seeker; discover it with a type assertion at
composition time:

	if sk, ok := src.(stream.Seeker); ok {
		pos, _ := stream.Tell(sk)
	}

Whence values are the stdlib io.SeekStart, io.SeekCurrent, and io.SeekEnd.

# Concurrency

Streams are single-caller objects. Nothing in this module is safe for
concurrent use; wrap access in your own synchronization if you must share.
*/
package stream
