/*
Package filter provides composable filter streams for Go applications.

A filter wraps an existing sink or source and exposes the same contract, so
filters stack freely over any leaf or over each other. This package offers
three filter families:

  - buffered: write-behind and read-ahead buffering over any sink or source
  - unget: pushback so parsers can return bytes to a source
  - metered: Prometheus instrumentation around any sink or source

Buffering batches many small writes into few large downstream ones:

	f, _ := filestream.Create("out.log")
	w := buffered.NewSink(f)
	stream.WriteLine(w, "batched")
	w.Flush()

Pushback lets a scanner peek and retreat:

	u := unget.New(src)
	b, _, _ := stream.ReadByte(u)
	u.Unget([]byte{b}) // not what we wanted, put it back

Filters never own the stream they wrap: closing a filter releases the
filter's own state and leaves the wrapped stream open. Like every stream in
this module, filters are single-caller objects and carry no locking.
*/
package filter
