/*
Package filestream provides file-backed sinks and sources over *os.File,
plus a rotating sink that starts a new file on a cron schedule.

# Owned and borrowed handles

Constructors taking a path (Create, Append, Open) own the handle: their
Close syncs best-effort and closes the file. Constructors taking an open
*os.File (NewSink, NewSource) borrow it: their Close marks the stream
closed but leaves the handle for the caller. Stdin, Stdout, and Stderr
return borrowed wrappers over the process streams.

	dst, err := filestream.Create("out.dat")
	if err != nil {
		return err
	}
	defer dst.Close()

	w := buffered.NewSink(dst)
	defer w.Close()

# Flushing and syncing

File writes go straight to the kernel, so Flush is a no-op returning nil.
Sync forces them to stable storage with fsync and reports failures as
flush errors.

# Rotation

RotatingSink writes through an owned file sink and checks a cron boundary
on every write. When a boundary has passed it closes the current
generation and opens the next, stamping each file name with the time it
was opened:

	logs, err := filestream.NewRotatingSink("app.log", "@hourly")
	// writes land in app-20240601-150000.log, then app-20240601-160000.log, ...

Boundaries are evaluated synchronously at write time. There are no
goroutines or timers behind a RotatingSink; an idle sink rotates on its
next write.
*/
package filestream
