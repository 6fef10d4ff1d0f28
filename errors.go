package zipenc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meigma/zipenc/internal/binfield"
	"github.com/meigma/zipenc/internal/namecodec"
)

// Sentinel errors. A failed run returns a *RecordError that unwraps to one
// of these.
var (
	// ErrTruncated is returned when the input ends inside a record.
	ErrTruncated = errors.New("zipenc: truncated record")

	// ErrIO is returned when reading the input or writing the output fails.
	ErrIO = errors.New("zipenc: i/o error")

	// ErrDecode is returned when a filename is not valid in the legacy encoding.
	ErrDecode = errors.New("zipenc: cannot decode filename")

	// ErrLedgerMiss is returned when a central directory entry names a file
	// whose local header has not been seen.
	ErrLedgerMiss = errors.New("zipenc: no local header for directory entry")

	// ErrUnsupportedRecord is returned for record kinds that are recognized
	// but not implemented.
	ErrUnsupportedRecord = errors.New("zipenc: unsupported record")

	// ErrUnknownSignature is returned for an unrecognized record signature.
	ErrUnknownSignature = errors.New("zipenc: unknown record signature")

	// ErrSizeOverflow is returned when a length or offset no longer fits its
	// field. ZIP64 is not supported.
	ErrSizeOverflow = errors.New("zipenc: size overflow")

	// ErrVerify is returned by Verify when an archive fails a structural check.
	ErrVerify = errors.New("zipenc: verification failed")

	// ErrUnknownEncoding is returned when an encoding name cannot be resolved.
	ErrUnknownEncoding = namecodec.ErrUnknownEncoding
)

// RecordError describes a failure while transcoding a single record.
type RecordError struct {
	// Err is the sentinel classifying the failure. It is nil for
	// context cancellation.
	Err error
	// Cause is the underlying error, if any.
	Cause error
	// Name is the filename of the record, decoded when possible.
	Name string
	// Offset is the input offset of the record signature.
	Offset uint64
	// Signature holds the record signature as read.
	Signature uint32
	// Kind is the record kind derived from Signature.
	Kind RecordKind
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	var b strings.Builder
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString("zipenc")
	}

	if errors.Is(e.Err, ErrUnknownSignature) {
		fmt.Fprintf(&b, " % x", []byte{
			byte(e.Signature), byte(e.Signature >> 8), byte(e.Signature >> 16), byte(e.Signature >> 24),
		})
	} else {
		b.WriteString(": ")
		b.WriteString(e.Kind.String())
	}
	fmt.Fprintf(&b, " at offset 0x%08X", e.Offset)

	if e.Name != "" {
		fmt.Fprintf(&b, " (name %q)", e.Name)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the sentinel and the underlying cause.
func (e *RecordError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// classify maps an internal error to its sentinel. When err is itself a
// sentinel, the returned cause is nil.
func classify(err error) (sentinel, cause error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	case isSentinel(err):
		return err, nil
	case errors.Is(err, binfield.ErrShortRead):
		return ErrTruncated, err
	case errors.Is(err, binfield.ErrOverflow), errors.Is(err, ErrSizeOverflow):
		return ErrSizeOverflow, err
	case errors.Is(err, namecodec.ErrInvalid):
		return ErrDecode, err
	default:
		return ErrIO, err
	}
}

func isSentinel(err error) bool {
	switch err {
	case ErrTruncated, ErrIO, ErrDecode, ErrLedgerMiss, ErrUnsupportedRecord, ErrUnknownSignature, ErrSizeOverflow:
		return true
	default:
		return false
	}
}
