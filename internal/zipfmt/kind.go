// Package zipfmt describes the record layouts of the ZIP container format
// (PKWARE APPNOTE 6.3.x) that the transcoder reads and writes.
package zipfmt

// Record signatures, as little-endian uint32 values of the 4 leading bytes.
const (
	SigLocalFile           uint32 = 0x04034b50 // PK\x03\x04
	SigDirectoryEntry      uint32 = 0x02014b50 // PK\x01\x02
	SigEndOfDirectory      uint32 = 0x06054b50 // PK\x05\x06
	SigArchiveExtraData    uint32 = 0x08064b50 // PK\x06\x08
	SigDigitalSignature    uint32 = 0x05054b50 // PK\x05\x05
	SigZip64EndOfDirectory uint32 = 0x06064b50 // PK\x06\x06
	SigZip64Locator        uint32 = 0x07064b50 // PK\x06\x07
	SigSpanningSignature   uint32 = 0x08074b50 // PK\x07\x08
	SigSpanningMarker      uint32 = 0x30304b50 // PK00
)

// Kind identifies a record by its signature.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindLocalFile
	KindDirectoryEntry
	KindEndOfDirectory
	KindArchiveExtraData
	KindDigitalSignature
	KindZip64EndOfDirectory
	KindZip64Locator
	KindSpanningSignature
	KindSpanningMarker
)

// KindOf maps a signature to its record kind.
func KindOf(sig uint32) Kind {
	switch sig {
	case SigLocalFile:
		return KindLocalFile
	case SigDirectoryEntry:
		return KindDirectoryEntry
	case SigEndOfDirectory:
		return KindEndOfDirectory
	case SigArchiveExtraData:
		return KindArchiveExtraData
	case SigDigitalSignature:
		return KindDigitalSignature
	case SigZip64EndOfDirectory:
		return KindZip64EndOfDirectory
	case SigZip64Locator:
		return KindZip64Locator
	case SigSpanningSignature:
		return KindSpanningSignature
	case SigSpanningMarker:
		return KindSpanningMarker
	default:
		return KindUnknown
	}
}

// Supported reports whether records of this kind can be transcoded.
func (k Kind) Supported() bool {
	switch k {
	case KindLocalFile, KindDirectoryEntry, KindEndOfDirectory:
		return true
	default:
		return false
	}
}

// String returns the feature name of the record kind.
func (k Kind) String() string {
	switch k {
	case KindLocalFile:
		return "local file header"
	case KindDirectoryEntry:
		return "central directory file header"
	case KindEndOfDirectory:
		return "end of central directory record"
	case KindArchiveExtraData:
		return "archive extra data record"
	case KindDigitalSignature:
		return "digital signature"
	case KindZip64EndOfDirectory:
		return "ZIP64 end of central directory record"
	case KindZip64Locator:
		return "ZIP64 end of central directory locator"
	case KindSpanningSignature:
		return "special spanning signature"
	case KindSpanningMarker:
		return "special spanning marker"
	default:
		return "unknown record"
	}
}

// Signature returns the signature of the record kind, or 0 for KindUnknown.
func (k Kind) Signature() uint32 {
	switch k {
	case KindLocalFile:
		return SigLocalFile
	case KindDirectoryEntry:
		return SigDirectoryEntry
	case KindEndOfDirectory:
		return SigEndOfDirectory
	case KindArchiveExtraData:
		return SigArchiveExtraData
	case KindDigitalSignature:
		return SigDigitalSignature
	case KindZip64EndOfDirectory:
		return SigZip64EndOfDirectory
	case KindZip64Locator:
		return SigZip64Locator
	case KindSpanningSignature:
		return SigSpanningSignature
	case KindSpanningMarker:
		return SigSpanningMarker
	default:
		return 0
	}
}
