package testutil

import (
	"bytes"
	"hash/crc32"
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"golang.org/x/text/encoding/japanese"
)

// File is an entry for BuildZip.
type File struct {
	// Name is the UTF-8 name; BuildZip stores it Shift JIS encoded.
	Name    string
	Content []byte
	Comment string
	Store   bool
}

// ShiftJIS returns name encoded in Shift JIS, failing the test if it cannot
// be represented.
func ShiftJIS(tb testing.TB, name string) []byte {
	tb.Helper()

	b, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(name))
	if err != nil {
		tb.Fatalf("encode %q as Shift JIS: %v", name, err)
	}
	return b
}

// BuildZip writes an archive the way a Japanese Windows archiver would:
// Shift JIS names without the UTF-8 flag, sizes in the local headers, and
// deflated payloads unless Store is set.
func BuildZip(tb testing.TB, files []File, comment string) []byte {
	tb.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		data := f.Content
		method := zip.Store
		if !f.Store {
			data = Deflate(tb, f.Content)
			method = zip.Deflate
		}
		fh := &zip.FileHeader{
			Name:               string(ShiftJIS(tb, f.Name)),
			Comment:            f.Comment,
			Method:             method,
			NonUTF8:            true,
			CRC32:              crc32.ChecksumIEEE(f.Content),
			CompressedSize64:   uint64(len(data)),
			UncompressedSize64: uint64(len(f.Content)),
		}
		w, err := zw.CreateRaw(fh)
		if err != nil {
			tb.Fatalf("create %q: %v", f.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			tb.Fatalf("write %q: %v", f.Name, err)
		}
	}
	if err := zw.SetComment(comment); err != nil {
		tb.Fatalf("set comment: %v", err)
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("close zip writer: %v", err)
	}
	return buf.Bytes()
}

// Deflate compresses data with raw DEFLATE.
func Deflate(tb testing.TB, data []byte) []byte {
	tb.Helper()

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		tb.Fatalf("create flate writer: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		tb.Fatalf("deflate: %v", err)
	}
	if err := fw.Close(); err != nil {
		tb.Fatalf("close flate writer: %v", err)
	}
	return buf.Bytes()
}

// ReadZip opens data with a ZIP reader and returns every entry's content by
// name, decompressing as needed.
func ReadZip(tb testing.TB, data []byte) map[string][]byte {
	tb.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		tb.Fatalf("open zip: %v", err)
	}
	out := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			tb.Fatalf("open %q: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			tb.Fatalf("read %q: %v", f.Name, err)
		}
		out[f.Name] = content
	}
	return out
}
