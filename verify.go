package zipenc

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/klauspost/compress/zip"
)

// VerifiedEntry describes an entry checked by Verify.
type VerifiedEntry struct {
	Name string
	// DataOffset is where the entry's payload starts, as resolved through
	// its local header.
	DataOffset     int64
	CompressedSize uint64
}

// Verify opens the archive with a ZIP reader and checks its structure: the
// central directory must be locatable from the end record, every name must
// be valid UTF-8, and every directory entry must point at a local header
// whose payload lies within the archive. Payloads are not decompressed.
func Verify(ra io.ReaderAt, size int64) ([]VerifiedEntry, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerify, err)
	}

	entries := make([]VerifiedEntry, 0, len(zr.File))
	for _, f := range zr.File {
		if !utf8.ValidString(f.Name) {
			return nil, fmt.Errorf("%w: name %q is not valid UTF-8", ErrVerify, f.Name)
		}
		off, err := f.DataOffset()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrVerify, f.Name, err)
		}
		if f.CompressedSize64 > uint64(size) || off > size-int64(f.CompressedSize64) { //nolint:gosec // bounded by size
			return nil, fmt.Errorf("%w: %s: payload extends past end of archive", ErrVerify, f.Name)
		}
		entries = append(entries, VerifiedEntry{
			Name:           f.Name,
			DataOffset:     off,
			CompressedSize: f.CompressedSize64,
		})
	}
	return entries, nil
}

// VerifyFile runs Verify on the archive at path.
func VerifyFile(path string) ([]VerifiedEntry, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return Verify(f, info.Size())
}
