package zipenc

// ProgressEvent is reported after each record is written.
type ProgressEvent struct {
	// Name is the UTF-8 filename, empty for the end of directory record.
	Name string

	// InputOffset and OutputOffset are where the record starts in each stream.
	InputOffset  uint64
	OutputOffset uint64

	Kind RecordKind
}

// ProgressFunc receives progress updates. It is called synchronously from the
// transcoding goroutine and should return quickly.
type ProgressFunc func(ProgressEvent)
