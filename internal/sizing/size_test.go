package sizing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("overflow")

func TestToUint16(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		want    uint16
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"max", math.MaxUint16, math.MaxUint16, false},
		{"too large", math.MaxUint16 + 1, 0, true},
		{"negative", -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUint16(tt.in, errTest)
			if tt.wantErr {
				require.ErrorIs(t, err, errTest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUint32(t *testing.T) {
	got, err := ToUint32(math.MaxUint32, errTest)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), got)

	_, err = ToUint32(math.MaxUint32+1, errTest)
	require.ErrorIs(t, err, errTest)
}
