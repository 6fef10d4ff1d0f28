package zipenc

import (
	"github.com/opencontainers/go-digest"

	"github.com/meigma/zipenc/internal/zipfmt"
)

// RecordKind identifies an archive record by its signature.
type RecordKind = zipfmt.Kind

// Record kinds.
const (
	KindUnknown             = zipfmt.KindUnknown
	KindLocalFile           = zipfmt.KindLocalFile
	KindDirectoryEntry      = zipfmt.KindDirectoryEntry
	KindEndOfDirectory      = zipfmt.KindEndOfDirectory
	KindArchiveExtraData    = zipfmt.KindArchiveExtraData
	KindDigitalSignature    = zipfmt.KindDigitalSignature
	KindZip64EndOfDirectory = zipfmt.KindZip64EndOfDirectory
	KindZip64Locator        = zipfmt.KindZip64Locator
	KindSpanningSignature   = zipfmt.KindSpanningSignature
	KindSpanningMarker      = zipfmt.KindSpanningMarker
)

// Report summarizes a completed run.
type Report struct {
	// Encoding is the IANA name of the legacy encoding names were decoded from.
	Encoding string

	// LocalHeaders and DirectoryEntries count the records rewritten.
	LocalHeaders     int
	DirectoryEntries int

	// RenamedNames counts local headers whose name bytes changed.
	RenamedNames int

	// DuplicateNames counts local headers that decoded to a name already
	// seen. Directory entries for such names all point at the last header.
	DuplicateNames int

	BytesIn  uint64
	BytesOut uint64

	// InputDigest and OutputDigest are digests of the full input and output
	// streams.
	InputDigest  digest.Digest
	OutputDigest digest.Digest
}
