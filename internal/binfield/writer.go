package binfield

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Writer is a buffered little-endian field writer that counts written bytes.
// Callers must Flush before the underlying writer is closed.
type Writer struct {
	bw  *bufio.Writer
	off uint64
}

// NewWriter wraps w with a buffer of the given size.
func NewWriter(w io.Writer, size int) *Writer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Writer{bw: bufio.NewWriterSize(w, size)}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() uint64 {
	return w.off
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.bw.Write(p)
	if n > 0 {
		//nolint:gosec // n is guaranteed non-negative by io.Writer contract
		if w.off > ^uint64(0)-uint64(n) {
			return n, ErrOverflow
		}
		w.off += uint64(n) //nolint:gosec // overflow checked above
	}
	return n, err
}

// Uint16 writes a little-endian uint16.
func (w *Writer) Uint16(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// Uint32 writes a little-endian uint32.
func (w *Writer) Uint32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteFixed encodes a fixed-size struct of little-endian fields.
func (w *Writer) WriteFixed(v any) error {
	buf, err := binary.Append(nil, binary.LittleEndian, v)
	if err != nil {
		return fmt.Errorf("binfield: encode %T: %w", v, err)
	}
	_, err = w.Write(buf)
	return err
}

// Block writes raw bytes.
func (w *Writer) Block(p []byte) error {
	_, err := w.Write(p)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
