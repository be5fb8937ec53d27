/*
Package buffered provides write-behind and read-ahead buffering filters.

Sink collects writes in a fixed buffer and forwards them downstream in
buffer-sized batches, turning many small writes into few large ones. Source
reads ahead from its upstream in buffer-sized fills and serves callers from
the buffered window.

	f, _ := filestream.Create("out.dat")
	defer f.Close()

	w := buffered.NewSink(f)
	defer w.Close()

	for _, rec := range records {
		stream.WriteLine(w, rec) // lands downstream in 4 KiB batches
	}
	w.Flush()

# The short-fill restriction

Source leans on the stream contract hard: any upstream fill shorter than
the buffer capacity is taken as exhaustion and latched, because a contract-
honoring source only runs short when it is out of data. Wrap only sources
that fill fully until exhausted. An upstream that returns early with data
still pending, the way a socket read naturally would, gets cut off at its
first short fill. Gather such a reader through stream.FromReader first;
its read-fully loop restores the contract shape.

# Closing

Closing a Sink flushes best-effort and discards the flush error. Callers
that must observe the error flush explicitly first:

	if err := w.Flush(); err != nil {
		return err
	}
	w.Close()
*/
package buffered
