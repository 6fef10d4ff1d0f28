package binfield

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A uint16
	B uint32
}

func TestReader_Fields(t *testing.T) {
	t.Parallel()

	data := []byte{
		0x34, 0x12, // uint16
		0x78, 0x56, 0x34, 0x12, // uint32
		0x01, 0x00, 0x02, 0x00, 0x00, 0x00, // pair
		'a', 'b', 'c',
	}
	r := NewReader(bytes.NewReader(data), 0)

	v16, err := r.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)
	assert.Equal(t, uint64(2), r.Offset())

	v32, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v32)

	var p pair
	require.NoError(t, r.ReadFixed(&p))
	assert.Equal(t, pair{A: 1, B: 2}, p)

	block, err := r.Block(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), block)
	assert.Equal(t, uint64(len(data)), r.Offset())

	done, err := r.Exhausted()
	require.NoError(t, err)
	assert.True(t, done)
}

func TestReader_ShortRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		read func(*Reader) error
	}{
		{"empty uint16", nil, func(r *Reader) error { _, err := r.Uint16(); return err }},
		{"partial uint32", []byte{1, 2, 3}, func(r *Reader) error { _, err := r.Uint32(); return err }},
		{"partial block", []byte("ab"), func(r *Reader) error { _, err := r.Block(5); return err }},
		{"partial fixed", []byte{1, 0, 2}, func(r *Reader) error { var p pair; return r.ReadFixed(&p) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewReader(bytes.NewReader(tt.data), 16)
			err := tt.read(r)
			require.ErrorIs(t, err, ErrShortRead)
		})
	}
}

func TestReader_Exhausted(t *testing.T) {
	t.Parallel()

	r := NewReader(bytes.NewReader([]byte{1}), 0)
	done, err := r.Exhausted()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, uint64(0), r.Offset(), "peeking must not advance the offset")
}

func TestReader_CopyN(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("payload-"), 1000)
	r := NewReader(bytes.NewReader(append(payload, 'x')), 128)
	var dst bytes.Buffer

	require.NoError(t, r.CopyN(context.Background(), &dst, uint64(len(payload)), make([]byte, 100)))
	assert.Equal(t, payload, dst.Bytes())
	assert.Equal(t, uint64(len(payload)), r.Offset())

	err := r.CopyN(context.Background(), &dst, 2, nil)
	require.ErrorIs(t, err, ErrShortRead)
}

func TestReader_CopyNCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReader(bytes.NewReader([]byte("data")), 0)
	err := r.CopyN(ctx, &bytes.Buffer{}, 4, nil)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestWriter_Fields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf, 0)

	require.NoError(t, w.Uint16(0x1234))
	require.NoError(t, w.Uint32(0x12345678))
	require.NoError(t, w.WriteFixed(pair{A: 1, B: 2}))
	require.NoError(t, w.Block([]byte("abc")))
	assert.Equal(t, uint64(15), w.Offset())
	assert.Zero(t, buf.Len(), "nothing reaches the destination before Flush")

	require.NoError(t, w.Flush())
	assert.Equal(t, []byte{
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0x01, 0x00, 0x02, 0x00, 0x00, 0x00,
		'a', 'b', 'c',
	}, buf.Bytes())
}
