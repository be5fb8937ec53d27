//go:build unix

package mmapstream

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fisherro/streams/internal/testutil"
	"github.com/fisherro/streams/pkg/memstream"
	"github.com/fisherro/streams/pkg/stream"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapped.dat")
	testutil.AssertNoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOpenReadsWholeFile(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("mapped contents")))
	testutil.AssertNoError(t, err)
	defer src.Close()

	p := make([]byte, 32)
	n, err := src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p[:n], []byte("mapped contents"))

	n, err = src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 0)
}

func TestReadAdvancesThroughMapping(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("abcdefgh")))
	testutil.AssertNoError(t, err)
	defer src.Close()

	p := make([]byte, 3)
	n, err := src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p[:n], []byte("abc"))

	n, err = src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p[:n], []byte("def"))

	n, err = src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p[:n], []byte("gh"))
}

func TestEmptyFile(t *testing.T) {
	src, err := Open(writeTemp(t, nil))
	testutil.AssertNoError(t, err)
	defer src.Close()

	testutil.AssertEqual(t, src.Size(), int64(0))
	n, err := src.Read(make([]byte, 8))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 0)
}

func TestSeek(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("0123456789")))
	testutil.AssertNoError(t, err)
	defer src.Close()

	pos, err := src.Seek(4, io.SeekStart)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos, int64(4))

	p := make([]byte, 2)
	_, err = src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p, []byte("45"))

	pos, err = src.Seek(-4, io.SeekCurrent)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos, int64(2))

	pos, err = src.Seek(-2, io.SeekEnd)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos, int64(8))

	_, err = src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p, []byte("89"))
}

func TestSeekNegativeOffset(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("data")))
	testutil.AssertNoError(t, err)
	defer src.Close()

	_, err = src.Seek(-1, io.SeekStart)
	testutil.AssertErrorIs(t, err, stream.ErrSeek)

	// The failed seek must not move the offset.
	p := make([]byte, 4)
	n, err := src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p[:n], []byte("data"))
}

func TestSeekPastEndReadsNothing(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("tiny")))
	testutil.AssertNoError(t, err)
	defer src.Close()

	pos, err := src.Seek(100, io.SeekStart)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos, int64(100))

	n, err := src.Read(make([]byte, 8))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 0)
}

func TestSeekBackwardRevives(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("again")))
	testutil.AssertNoError(t, err)
	defer src.Close()

	p := make([]byte, 16)
	n, err := src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 5)

	_, err = src.Seek(0, io.SeekStart)
	testutil.AssertNoError(t, err)

	n, err = src.Read(p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p[:n], []byte("again"))
}

func TestBytesExposesMapping(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("zero copy view")))
	testutil.AssertNoError(t, err)
	defer src.Close()

	testutil.AssertBytes(t, src.Bytes(), []byte("zero copy view"))
	testutil.AssertEqual(t, src.Size(), int64(14))
}

func TestClose(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("soon gone")))
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, src.Close())
	testutil.AssertNoError(t, src.Close())

	_, err = src.Read(make([]byte, 4))
	testutil.AssertErrorIs(t, err, stream.ErrClosed)
	_, err = src.Seek(0, io.SeekStart)
	testutil.AssertErrorIs(t, err, stream.ErrClosed)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.dat"))
	testutil.AssertError(t, err)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSeekerCapability(t *testing.T) {
	src, err := Open(writeTemp(t, []byte("capable")))
	testutil.AssertNoError(t, err)
	defer src.Close()

	var s stream.Source = src
	seeker, ok := s.(stream.Seeker)
	if !ok {
		t.Fatal("expected the mapped source to expose Seek")
	}
	pos, err := stream.Tell(seeker)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos, int64(0))
}

func TestCopyIntoMemory(t *testing.T) {
	payload := make([]byte, 10000)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	src, err := Open(writeTemp(t, payload))
	testutil.AssertNoError(t, err)
	defer src.Close()

	dst := memstream.New()
	n, err := stream.Copy(dst, src)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, int64(10000))
	testutil.AssertBytes(t, dst.Bytes(), payload)
}
