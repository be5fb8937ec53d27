package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fisherro/streams/internal/testutil"
	"github.com/fisherro/streams/pkg/memstream"
)

func TestPickBufferSize(t *testing.T) {
	testutil.AssertEqual(t, pickBufferSize(512, true), 512)
	testutil.AssertEqual(t, pickBufferSize(512, false), 512)
	testutil.AssertEqual(t, pickBufferSize(0, true), ttyBufferSize)
	testutil.AssertEqual(t, pickBufferSize(0, false), 4096)
	testutil.AssertEqual(t, pickBufferSize(-1, false), 4096)
}

func TestDisplayName(t *testing.T) {
	testutil.AssertEqual(t, displayName("-"), "stdin")
	testutil.AssertEqual(t, displayName("notes.txt"), "notes.txt")
}

func TestCatOneCopiesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("cat me through streams\n"), 0o644))

	out := memstream.New()
	testutil.AssertNoError(t, catOne(out, path, 64, false, false))
	testutil.AssertEqual(t, out.String(), "cat me through streams\n")
}

func TestCatOneUnbuffered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("raw"), 0o644))

	out := memstream.New()
	testutil.AssertNoError(t, catOne(out, path, 64, true, false))
	testutil.AssertEqual(t, out.String(), "raw")
}

func TestCatOneMissingFile(t *testing.T) {
	out := memstream.New()
	err := catOne(out, filepath.Join(t.TempDir(), "absent"), 64, false, false)
	testutil.AssertError(t, err)
}

func TestOpenOutputModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	sink, err := openOutput(path, false)
	testutil.AssertNoError(t, err)
	_, err = sink.Write([]byte("first"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, sink.Close())

	sink, err = openOutput(path, true)
	testutil.AssertNoError(t, err)
	_, err = sink.Write([]byte(" second"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, sink.Close())

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(data), "first second")
}
