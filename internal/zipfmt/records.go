package zipfmt

// FlagUTF8 is general purpose bit 11: filename and comment are UTF-8.
const FlagUTF8 uint16 = 1 << 11

// LocalFileHeader is the fixed-size part of a local file header, following
// the signature. The filename and extra field follow it.
type LocalFileHeader struct {
	ReaderVersion    uint16
	Flags            uint16
	Method           uint16
	ModifiedTime     uint16
	ModifiedDate     uint16
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	NameLength       uint16
	ExtraLength      uint16
}

// DirectoryHeader is the fixed-size part of a central directory file header,
// following the signature. The filename, extra field and file comment follow
// it.
type DirectoryHeader struct {
	CreatorVersion   uint16
	ReaderVersion    uint16
	Flags            uint16
	Method           uint16
	ModifiedTime     uint16
	ModifiedDate     uint16
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	NameLength       uint16
	ExtraLength      uint16
	CommentLength    uint16
	DiskNumberStart  uint16
	InternalAttrs    uint16
	ExternalAttrs    uint32
	// LocalHeaderOffset is the offset of the local file header from the
	// start of the archive.
	LocalHeaderOffset uint32
}

// EndOfDirectory is the fixed-size part of the end of central directory
// record, following the signature. The archive comment follows it.
type EndOfDirectory struct {
	DiskNumber      uint16
	DirectoryDisk   uint16
	EntriesOnDisk   uint16
	EntriesTotal    uint16
	DirectorySize   uint32
	DirectoryOffset uint32
	CommentLength   uint16
}

// Fixed record sizes, signature included.
const (
	LocalFileHeaderLen = 30
	DirectoryHeaderLen = 46
	EndOfDirectoryLen  = 22
)
