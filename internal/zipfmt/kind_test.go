package zipfmt

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sig       []byte
		want      Kind
		supported bool
	}{
		{[]byte{'P', 'K', 3, 4}, KindLocalFile, true},
		{[]byte{'P', 'K', 1, 2}, KindDirectoryEntry, true},
		{[]byte{'P', 'K', 5, 6}, KindEndOfDirectory, true},
		{[]byte{'P', 'K', 6, 8}, KindArchiveExtraData, false},
		{[]byte{'P', 'K', 5, 5}, KindDigitalSignature, false},
		{[]byte{'P', 'K', 6, 6}, KindZip64EndOfDirectory, false},
		{[]byte{'P', 'K', 6, 7}, KindZip64Locator, false},
		{[]byte{'P', 'K', 7, 8}, KindSpanningSignature, false},
		{[]byte{'P', 'K', '0', '0'}, KindSpanningMarker, false},
		{[]byte{'P', 'K', 9, 9}, KindUnknown, false},
		{[]byte{0, 0, 0, 0}, KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			t.Parallel()

			k := KindOf(binary.LittleEndian.Uint32(tt.sig))
			assert.Equal(t, tt.want, k)
			assert.Equal(t, tt.supported, k.Supported())
		})
	}
}

func TestRecordSizes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LocalFileHeaderLen, 4+binary.Size(LocalFileHeader{}))
	assert.Equal(t, DirectoryHeaderLen, 4+binary.Size(DirectoryHeader{}))
	assert.Equal(t, EndOfDirectoryLen, 4+binary.Size(EndOfDirectory{}))
}
