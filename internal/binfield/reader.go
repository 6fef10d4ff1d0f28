// Package binfield reads and writes the fixed-width little-endian fields and
// raw byte blocks that make up archive records, tracking the byte offset of
// each stream as it goes.
package binfield

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// DefaultBufferSize is the buffer size used when a non-positive size is given.
const DefaultBufferSize = 64 * 1024

var (
	// ErrShortRead is returned when fewer bytes are available than requested.
	ErrShortRead = errors.New("binfield: short read")

	// ErrOverflow indicates an offset counter exceeded its maximum value.
	ErrOverflow = errors.New("binfield: offset overflow")
)

// Reader is a buffered little-endian field reader that counts consumed bytes.
type Reader struct {
	br  *bufio.Reader
	off uint64
}

// NewReader wraps r with a buffer of the given size.
func NewReader(r io.Reader, size int) *Reader {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Reader{br: bufio.NewReaderSize(r, size)}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() uint64 {
	return r.off
}

// Exhausted reports whether the underlying stream has no bytes left.
func (r *Reader) Exhausted() (bool, error) {
	_, err := r.br.Peek(1)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, io.EOF):
		return true, nil
	default:
		return false, err
	}
}

// ReadFull fills p or fails with ErrShortRead.
func (r *Reader) ReadFull(p []byte) error {
	start := r.off
	n, err := io.ReadFull(r.br, p)
	if aerr := r.advance(n); aerr != nil {
		return aerr
	}
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: want %d bytes at offset %d, got %d", ErrShortRead, len(p), start, n)
		}
		return err
	}
	return nil
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() (uint16, error) {
	var buf [2]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	var buf [4]byte
	if err := r.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadFixed decodes a fixed-size struct of little-endian fields into v.
// v must be a pointer accepted by encoding/binary.
func (r *Reader) ReadFixed(v any) error {
	size := binary.Size(v)
	if size < 0 {
		return fmt.Errorf("binfield: %T is not fixed-size", v)
	}
	buf := make([]byte, size)
	if err := r.ReadFull(buf); err != nil {
		return err
	}
	_, err := binary.Decode(buf, binary.LittleEndian, v)
	return err
}

// Block reads exactly n raw bytes.
func (r *Reader) Block(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// CopyN copies exactly n bytes to dst using buf as scratch space, checking
// for context cancellation between chunks.
func (r *Reader) CopyN(ctx context.Context, dst io.Writer, n uint64, buf []byte) error {
	if len(buf) == 0 {
		buf = make([]byte, 32*1024)
	}
	for n > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk := buf
		if uint64(len(chunk)) > n {
			chunk = chunk[:n]
		}
		if err := r.ReadFull(chunk); err != nil {
			return err
		}
		nw, err := dst.Write(chunk)
		if err != nil {
			return err
		}
		if nw != len(chunk) {
			return io.ErrShortWrite
		}
		n -= uint64(nw)
	}
	return nil
}

func (r *Reader) advance(n int) error {
	if n <= 0 {
		return nil
	}
	//nolint:gosec // n is guaranteed non-negative by io.Reader contract
	if r.off > ^uint64(0)-uint64(n) {
		return ErrOverflow
	}
	r.off += uint64(n) //nolint:gosec // overflow checked above
	return nil
}
