// Package testutil builds ZIP archives for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/meigma/zipenc/internal/zipfmt"
)

// RawEntry describes one stored entry of a RawArchive. Name holds the raw
// bytes written to both the local header and the directory entry unless
// DirectoryName is set.
type RawEntry struct {
	Name          []byte
	DirectoryName []byte
	Payload       []byte
	Extra         []byte
	Comment       []byte
	Flags         uint16
}

// RawArchive is a byte-exact archive builder. Unlike archive writers, it
// writes names as given, permits duplicates, and reports where each record
// starts.
type RawArchive struct {
	Entries []RawEntry
	Comment []byte
}

// Layout gives the offsets of every record in a built archive.
type Layout struct {
	LocalHeaders     []uint32
	DirectoryEntries []uint32
	DirectoryStart   uint32
	DirectorySize    uint32
	EndOfDirectory   uint32
}

// Build serializes the archive.
func (a RawArchive) Build(tb testing.TB) ([]byte, Layout) {
	tb.Helper()

	var buf bytes.Buffer
	var layout Layout
	put := func(v any) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			tb.Fatalf("write record: %v", err)
		}
	}

	for _, e := range a.Entries {
		layout.LocalHeaders = append(layout.LocalHeaders, uint32(buf.Len())) //nolint:gosec // test archives are small
		put(zipfmt.SigLocalFile)
		put(zipfmt.LocalFileHeader{
			ReaderVersion:    20,
			Flags:            e.Flags,
			Method:           0,
			ModifiedTime:     0x6000,
			ModifiedDate:     0x5a21,
			CRC32:            crc32.ChecksumIEEE(e.Payload),
			CompressedSize:   uint32(len(e.Payload)), //nolint:gosec // test archives are small
			UncompressedSize: uint32(len(e.Payload)), //nolint:gosec // test archives are small
			NameLength:       uint16(len(e.Name)),    //nolint:gosec // test archives are small
			ExtraLength:      uint16(len(e.Extra)),   //nolint:gosec // test archives are small
		})
		buf.Write(e.Name)
		buf.Write(e.Extra)
		buf.Write(e.Payload)
	}

	layout.DirectoryStart = uint32(buf.Len()) //nolint:gosec // test archives are small
	for i, e := range a.Entries {
		name := e.Name
		if e.DirectoryName != nil {
			name = e.DirectoryName
		}
		layout.DirectoryEntries = append(layout.DirectoryEntries, uint32(buf.Len())) //nolint:gosec // test archives are small
		put(zipfmt.SigDirectoryEntry)
		put(zipfmt.DirectoryHeader{
			CreatorVersion:    20,
			ReaderVersion:     20,
			Flags:             e.Flags,
			ModifiedTime:      0x6000,
			ModifiedDate:      0x5a21,
			CRC32:             crc32.ChecksumIEEE(e.Payload),
			CompressedSize:    uint32(len(e.Payload)), //nolint:gosec // test archives are small
			UncompressedSize:  uint32(len(e.Payload)), //nolint:gosec // test archives are small
			NameLength:        uint16(len(name)),      //nolint:gosec // test archives are small
			ExtraLength:       uint16(len(e.Extra)),   //nolint:gosec // test archives are small
			CommentLength:     uint16(len(e.Comment)), //nolint:gosec // test archives are small
			ExternalAttrs:     0x81a40000,
			LocalHeaderOffset: layout.LocalHeaders[i],
		})
		buf.Write(name)
		buf.Write(e.Extra)
		buf.Write(e.Comment)
	}

	layout.EndOfDirectory = uint32(buf.Len()) //nolint:gosec // test archives are small
	layout.DirectorySize = layout.EndOfDirectory - layout.DirectoryStart
	put(zipfmt.SigEndOfDirectory)
	put(zipfmt.EndOfDirectory{
		EntriesOnDisk:   uint16(len(a.Entries)), //nolint:gosec // test archives are small
		EntriesTotal:    uint16(len(a.Entries)), //nolint:gosec // test archives are small
		DirectorySize:   layout.DirectorySize,
		DirectoryOffset: layout.DirectoryStart,
		CommentLength:   uint16(len(a.Comment)), //nolint:gosec // test archives are small
	})
	buf.Write(a.Comment)

	return buf.Bytes(), layout
}

// Parsed holds the fields of an archive read back by Parse.
type Parsed struct {
	Locals     []ParsedLocal
	Directory  []ParsedDirectory
	End        zipfmt.EndOfDirectory
	EndOffset  uint32
	EndComment []byte
}

// ParsedLocal is a local file header read back by Parse.
type ParsedLocal struct {
	Header  zipfmt.LocalFileHeader
	Name    []byte
	Extra   []byte
	Payload []byte
	Offset  uint32
}

// ParsedDirectory is a directory entry read back by Parse.
type ParsedDirectory struct {
	Header  zipfmt.DirectoryHeader
	Name    []byte
	Extra   []byte
	Comment []byte
	Offset  uint32
}

// Parse reads an archive record by record, failing the test on anything it
// does not understand. It is the inverse of Build and only understands the
// records the transcoder writes.
func Parse(tb testing.TB, data []byte) Parsed {
	tb.Helper()

	var p Parsed
	r := bytes.NewReader(data)
	get := func(v any) {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			tb.Fatalf("read record at %d: %v", len(data)-r.Len(), err)
		}
	}
	block := func(n int) []byte {
		if n == 0 {
			return nil
		}
		b := make([]byte, n)
		get(b)
		return b
	}

	for r.Len() > 0 {
		off := uint32(len(data) - r.Len()) //nolint:gosec // test archives are small
		var sig uint32
		get(&sig)
		switch sig {
		case zipfmt.SigLocalFile:
			var l ParsedLocal
			l.Offset = off
			get(&l.Header)
			l.Name = block(int(l.Header.NameLength))
			l.Extra = block(int(l.Header.ExtraLength))
			l.Payload = block(int(l.Header.CompressedSize))
			p.Locals = append(p.Locals, l)
		case zipfmt.SigDirectoryEntry:
			var d ParsedDirectory
			d.Offset = off
			get(&d.Header)
			d.Name = block(int(d.Header.NameLength))
			d.Extra = block(int(d.Header.ExtraLength))
			d.Comment = block(int(d.Header.CommentLength))
			p.Directory = append(p.Directory, d)
		case zipfmt.SigEndOfDirectory:
			p.EndOffset = off
			get(&p.End)
			p.EndComment = block(int(p.End.CommentLength))
		default:
			tb.Fatalf("unexpected signature %08x at %d", sig, off)
		}
	}
	return p
}
