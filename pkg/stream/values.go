package stream

import "encoding/binary"

// Fixed-width integer transport. The byte order is always explicit; these
// helpers never pick one for the caller.

// PutUint16 writes v to dst in the given byte order.
func PutUint16(dst Sink, order binary.ByteOrder, v uint16) error {
	var buf [2]byte
	order.PutUint16(buf[:], v)
	_, err := WriteFull(dst, buf[:])
	return err
}

// PutUint32 writes v to dst in the given byte order.
func PutUint32(dst Sink, order binary.ByteOrder, v uint32) error {
	var buf [4]byte
	order.PutUint32(buf[:], v)
	_, err := WriteFull(dst, buf[:])
	return err
}

// PutUint64 writes v to dst in the given byte order.
func PutUint64(dst Sink, order binary.ByteOrder, v uint64) error {
	var buf [8]byte
	order.PutUint64(buf[:], v)
	_, err := WriteFull(dst, buf[:])
	return err
}

// GetUint16 reads a uint16 from src in the given byte order. It issues a
// single Read for the full width; ok is false when the source could not
// supply all of it, and no partial value is produced.
func GetUint16(src Source, order binary.ByteOrder) (uint16, bool, error) {
	var buf [2]byte
	n, err := src.Read(buf[:])
	if err != nil {
		return 0, false, err
	}
	if n < len(buf) {
		return 0, false, nil
	}
	return order.Uint16(buf[:]), true, nil
}

// GetUint32 reads a uint32 from src in the given byte order. Semantics
// match GetUint16.
func GetUint32(src Source, order binary.ByteOrder) (uint32, bool, error) {
	var buf [4]byte
	n, err := src.Read(buf[:])
	if err != nil {
		return 0, false, err
	}
	if n < len(buf) {
		return 0, false, nil
	}
	return order.Uint32(buf[:]), true, nil
}

// GetUint64 reads a uint64 from src in the given byte order. Semantics
// match GetUint16.
func GetUint64(src Source, order binary.ByteOrder) (uint64, bool, error) {
	var buf [8]byte
	n, err := src.Read(buf[:])
	if err != nil {
		return 0, false, err
	}
	if n < len(buf) {
		return 0, false, nil
	}
	return order.Uint64(buf[:]), true, nil
}
