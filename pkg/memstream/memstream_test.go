package memstream

import (
	"testing"

	"github.com/fisherro/streams/internal/testutil"
	"github.com/fisherro/streams/pkg/stream"
)

func TestSink(t *testing.T) {
	t.Run("accepts everything", func(t *testing.T) {
		sink := New()

		n, err := sink.Write([]byte("hello "))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 6)

		n, err = sink.Write([]byte("world"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 5)

		testutil.AssertEqual(t, sink.String(), "hello world")
		testutil.AssertEqual(t, sink.Len(), 11)
	})

	t.Run("flush is a no-op", func(t *testing.T) {
		sink := New()
		_, _ = sink.Write([]byte("data"))

		testutil.AssertNoError(t, sink.Flush())
		testutil.AssertEqual(t, sink.String(), "data")
	})

	t.Run("reset clears", func(t *testing.T) {
		sink := New()
		_, _ = sink.Write([]byte("data"))
		sink.Reset()

		testutil.AssertEqual(t, sink.Len(), 0)
	})
}

func TestFixedSink(t *testing.T) {
	t.Run("fills the buffer", func(t *testing.T) {
		buf := make([]byte, 8)
		sink := NewFixedSink(buf)

		n, err := sink.Write([]byte("abc"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 3)
		testutil.AssertBytes(t, sink.Bytes(), []byte("abc"))
		testutil.AssertEqual(t, len(sink.Unused()), 5)
	})

	t.Run("short write at capacity", func(t *testing.T) {
		buf := make([]byte, 4)
		sink := NewFixedSink(buf)

		n, err := sink.Write([]byte("abcdef"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 4)
		testutil.AssertBytes(t, sink.Bytes(), []byte("abcd"))

		// Full: accepts nothing, still no error.
		n, err = sink.Write([]byte("gh"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 0)
		testutil.AssertEqual(t, sink.Len(), 4)
	})

	t.Run("full sink trips WriteFull", func(t *testing.T) {
		sink := NewFixedSink(make([]byte, 2))

		n, err := stream.WriteFull(sink, []byte("abcdef"))
		testutil.AssertEqual(t, n, 2)
		testutil.AssertErrorIs(t, err, stream.ErrWrite)
	})

	t.Run("writes land in the caller's slice", func(t *testing.T) {
		buf := make([]byte, 4)
		sink := NewFixedSink(buf)

		_, _ = sink.Write([]byte("hi"))
		testutil.AssertBytes(t, buf[:2], []byte("hi"))
	})
}

func TestSource(t *testing.T) {
	t.Run("reads and shrinks", func(t *testing.T) {
		src := NewSource([]byte("abcdef"))
		testutil.AssertEqual(t, src.Remaining(), 6)

		p := make([]byte, 4)
		n, err := src.Read(p)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 4)
		testutil.AssertBytes(t, p, []byte("abcd"))
		testutil.AssertEqual(t, src.Remaining(), 2)
	})

	t.Run("short fill at exhaustion", func(t *testing.T) {
		src := NewSource([]byte("abc"))

		p := make([]byte, 10)
		n, err := src.Read(p)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 3)

		// Exhausted: every further read returns zero.
		n, err = src.Read(p)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 0)

		n, err = src.Read(p)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 0)
	})

	t.Run("empty source", func(t *testing.T) {
		src := NewSource(nil)

		n, err := src.Read(make([]byte, 4))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, n, 0)
		testutil.AssertEqual(t, src.Remaining(), 0)
	})
}

func TestRoundTrip(t *testing.T) {
	data := make([]byte, 3000)
	for i := range data {
		data[i] = byte(i)
	}

	sink := New()
	n, err := stream.Copy(sink, NewSource(data))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, int64(len(data)))
	testutil.AssertBytes(t, sink.Bytes(), data)
}
