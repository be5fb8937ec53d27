package main

import (
	"bytes"
	"fmt"

	"github.com/fisherro/streams/pkg/stream"
)

// hexLineWidth is the byte count per rendered row, matching hexdump -C.
const hexLineWidth = 16

// ANSI codes for the dimmed offset column.
var (
	dimCode   = []byte("\033[37;2m")
	resetCode = []byte("\033[0m")
)

// hexSink renders bytes as hexdump -C style rows and forwards the text
// downstream. A partial row waits for more bytes until Flush.
type hexSink struct {
	dst    stream.Sink
	color  bool
	offset int64
	line   []byte
}

func newHexSink(dst stream.Sink, color bool) *hexSink {
	return &hexSink{
		dst:   dst,
		color: color,
		line:  make([]byte, 0, hexLineWidth),
	}
}

// Write absorbs p into 16-byte rows, rendering each completed row. The
// returned count covers bytes absorbed before any downstream failure.
func (h *hexSink) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		need := hexLineWidth - len(h.line)
		if need > len(p) {
			need = len(p)
		}
		h.line = append(h.line, p[:need]...)
		total += need
		p = p[need:]
		if len(h.line) == hexLineWidth {
			if err := h.writeRow(); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Flush renders any partial row and flushes downstream.
func (h *hexSink) Flush() error {
	if err := h.writeRow(); err != nil {
		return err
	}
	return h.dst.Flush()
}

func (h *hexSink) writeRow() error {
	if len(h.line) == 0 {
		return nil
	}

	var row bytes.Buffer
	if h.color {
		row.Write(dimCode)
	}
	fmt.Fprintf(&row, "%08x", h.offset)
	if h.color {
		row.Write(resetCode)
	}
	row.WriteString("  ")
	for i := 0; i < hexLineWidth; i++ {
		if i == hexLineWidth/2 {
			row.WriteByte(' ')
		}
		if i < len(h.line) {
			fmt.Fprintf(&row, "%02x ", h.line[i])
		} else {
			row.WriteString("   ")
		}
	}
	row.WriteString(" |")
	for _, b := range h.line {
		if b < 0x20 || b > 0x7e {
			b = '.'
		}
		row.WriteByte(b)
	}
	row.WriteString("|\n")

	if _, err := stream.WriteFull(h.dst, row.Bytes()); err != nil {
		return err
	}
	h.offset += int64(len(h.line))
	h.line = h.line[:0]
	return nil
}
