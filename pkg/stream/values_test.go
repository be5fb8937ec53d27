package stream

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/fisherro/streams/internal/testutil"
)

func TestPutUintWireFormat(t *testing.T) {
	tests := []struct {
		name string
		put  func(Sink) error
		wire []byte
	}{
		{
			name: "uint16 big endian",
			put:  func(s Sink) error { return PutUint16(s, binary.BigEndian, 0x0102) },
			wire: []byte{0x01, 0x02},
		},
		{
			name: "uint16 little endian",
			put:  func(s Sink) error { return PutUint16(s, binary.LittleEndian, 0x0102) },
			wire: []byte{0x02, 0x01},
		},
		{
			name: "uint32 big endian",
			put:  func(s Sink) error { return PutUint32(s, binary.BigEndian, 0x01020304) },
			wire: []byte{0x01, 0x02, 0x03, 0x04},
		},
		{
			name: "uint32 little endian",
			put:  func(s Sink) error { return PutUint32(s, binary.LittleEndian, 0x01020304) },
			wire: []byte{0x04, 0x03, 0x02, 0x01},
		},
		{
			name: "uint64 big endian",
			put:  func(s Sink) error { return PutUint64(s, binary.BigEndian, 0x0102030405060708) },
			wire: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		},
		{
			name: "uint64 little endian",
			put:  func(s Sink) error { return PutUint64(s, binary.LittleEndian, 0x0102030405060708) },
			wire: []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := testutil.NewRecordingSink()
			testutil.AssertNoError(t, tt.put(sink))
			testutil.AssertBytes(t, sink.Bytes(), tt.wire)
		})
	}
}

func TestValueRoundTrip(t *testing.T) {
	orders := []struct {
		name  string
		order binary.ByteOrder
	}{
		{"big endian", binary.BigEndian},
		{"little endian", binary.LittleEndian},
	}

	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			sink := testutil.NewRecordingSink()
			testutil.AssertNoError(t, PutUint16(sink, o.order, 0x0202))
			testutil.AssertNoError(t, PutUint32(sink, o.order, 0x03030303))
			testutil.AssertNoError(t, PutUint64(sink, o.order, 0x0404040404040404))

			src := &sliceSource{data: sink.Bytes()}

			v16, ok, err := GetUint16(src, o.order)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ok, true)
			testutil.AssertEqual(t, v16, uint16(0x0202))

			v32, ok, err := GetUint32(src, o.order)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ok, true)
			testutil.AssertEqual(t, v32, uint32(0x03030303))

			v64, ok, err := GetUint64(src, o.order)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ok, true)
			testutil.AssertEqual(t, v64, uint64(0x0404040404040404))

			// The stream is fully drained.
			_, ok, err = GetUint16(src, o.order)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ok, false)
		})
	}
}

func TestGetUintShortFill(t *testing.T) {
	t.Run("uint16 with one byte", func(t *testing.T) {
		src := &sliceSource{data: []byte{0xFF}}

		v, ok, err := GetUint16(src, binary.BigEndian)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, ok, false)
		testutil.AssertEqual(t, v, uint16(0))
	})

	t.Run("uint32 with three bytes", func(t *testing.T) {
		src := &sliceSource{data: []byte{0x01, 0x02, 0x03}}

		v, ok, err := GetUint32(src, binary.BigEndian)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, ok, false)
		testutil.AssertEqual(t, v, uint32(0))
	})

	t.Run("uint64 with seven bytes", func(t *testing.T) {
		src := &sliceSource{data: pattern(7)}

		v, ok, err := GetUint64(src, binary.BigEndian)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, ok, false)
		testutil.AssertEqual(t, v, uint64(0))
	})
}

func TestGetUintSingleRead(t *testing.T) {
	src := testutil.NewScriptedSource([]byte{0x12, 0x34})

	v, ok, err := GetUint16(src, binary.BigEndian)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, uint16(0x1234))
	testutil.AssertEqual(t, src.Calls(), 1)
}

func TestGetUintReadError(t *testing.T) {
	boom := errors.New("read failure")
	src := testutil.NewScriptedSource()
	src.SetErrorOnNth(1, boom)

	_, ok, err := GetUint32(src, binary.BigEndian)
	testutil.AssertEqual(t, ok, false)
	testutil.AssertErrorIs(t, err, boom)
}

func TestPutUintShortSink(t *testing.T) {
	err := PutUint64(fullSink{}, binary.BigEndian, 1)
	testutil.AssertErrorIs(t, err, ErrWrite)
}
