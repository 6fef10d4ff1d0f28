package namecodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     []byte
		want    string
		wantErr bool
	}{
		{"ascii", []byte("docs/readme.txt"), "docs/readme.txt", false},
		{"empty", nil, "", false},
		{"kanji", []byte{0x93, 0xfa, 0x96, 0x7b}, "日本", false},
		{"half-width katakana", []byte{0xb1, 0xb2}, "ｱｲ", false},
		{"mixed", []byte{'a', '/', 0x93, 0xfa, '.', 't', 'x', 't'}, "a/日.txt", false},
		{"invalid lead byte", []byte{'a', 0xff}, "", true},
		{"truncated pair", []byte{'a', 0x93}, "", true},
		{"invalid trail byte", []byte{0x81, 0x20}, "", true},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.Decode(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	names := []string{"テスト/資料.csv", "日本語のファイル名.txt", "①②③.dat"}
	c := Default()
	for _, name := range names {
		raw, err := japanese.ShiftJIS.NewEncoder().String(name)
		require.NoError(t, err)

		got, err := c.Decode([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, name, got)
		assert.NotEqual(t, len(raw), len(got), "UTF-8 form should differ in length")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	c, err := Lookup("Shift_JIS")
	require.NoError(t, err)
	assert.Equal(t, "Shift_JIS", c.Name())

	c, err = Lookup("EUC-JP")
	require.NoError(t, err)
	got, err := c.Decode([]byte{0xc6, 0xfc, 0xcb, 0xdc})
	require.NoError(t, err)
	assert.Equal(t, "日本", got)

	_, err = Lookup("no-such-encoding")
	require.ErrorIs(t, err, ErrUnknownEncoding)
}
