package stream

// WriteString writes s in full, like WriteFull for a string.
func WriteString(dst Sink, s string) (int, error) {
	return WriteFull(dst, []byte(s))
}

// WriteLine writes s followed by a newline.
func WriteLine(dst Sink, s string) (int, error) {
	n, err := WriteString(dst, s)
	if err != nil {
		return n, err
	}
	if err := WriteByte(dst, '\n'); err != nil {
		return n, err
	}
	return n + 1, nil
}

// WriteByte writes a single byte.
func WriteByte(dst Sink, b byte) error {
	buf := [1]byte{b}
	_, err := WriteFull(dst, buf[:])
	return err
}

// ReadByte reads a single byte. ok is false when the source is exhausted.
func ReadByte(src Source) (byte, bool, error) {
	var buf [1]byte
	n, err := src.Read(buf[:])
	if err != nil {
		return 0, false, err
	}
	return buf[0], n == 1, nil
}

// ReadLine reads bytes up to a newline, which is consumed but not included
// in the result. ok is false only when the source was already exhausted;
// exhaustion mid-line returns the partial line with ok true. On a read
// error the bytes collected so far are returned along with the error.
func ReadLine(src Source) (string, bool, error) {
	b, ok, err := ReadByte(src)
	if err != nil || !ok {
		return "", false, err
	}
	var line []byte
	for {
		if b == '\n' {
			return string(line), true, nil
		}
		line = append(line, b)
		b, ok, err = ReadByte(src)
		if err != nil || !ok {
			return string(line), true, err
		}
	}
}

// ReadUntil reads bytes up to and including the sentinel. If the source is
// exhausted first, the bytes collected so far are returned without error.
func ReadUntil(src Source, sentinel byte) ([]byte, error) {
	var out []byte
	for {
		b, ok, err := ReadByte(src)
		if err != nil || !ok {
			return out, err
		}
		out = append(out, b)
		if b == sentinel {
			return out, nil
		}
	}
}

// Skip discards up to n bytes from src and returns the number discarded,
// which is less than n only when the source was exhausted first.
func Skip(src Source, n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	buf := make([]byte, min64(n, copyChunkSize))
	var skipped int64
	for skipped < n {
		want := min64(n-skipped, int64(len(buf)))
		got, err := src.Read(buf[:want])
		skipped += int64(got)
		if err != nil {
			return skipped, err
		}
		if int64(got) < want {
			return skipped, nil
		}
	}
	return skipped, nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
