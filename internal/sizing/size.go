// Package sizing provides checked conversions into the fixed-width fields of
// the archive format.
package sizing

import "math"

// ToUint16 converts n to uint16, returning overflowErr if it doesn't fit.
func ToUint16(n int, overflowErr error) (uint16, error) {
	if n < 0 || n > math.MaxUint16 {
		return 0, overflowErr
	}
	return uint16(n), nil
}

// ToUint32 converts an offset to uint32, returning overflowErr if it doesn't fit.
func ToUint32(off uint64, overflowErr error) (uint32, error) {
	if off > math.MaxUint32 {
		return 0, overflowErr
	}
	return uint32(off), nil
}
