package zipenc

import (
	"github.com/meigma/zipenc/internal/sizing"
	"github.com/meigma/zipenc/internal/zipfmt"
)

// endOfDirectory rewrites the end of central directory record with the
// output size and offset of the directory. The input is positioned just
// after the signature.
//
// The directory size covers the bytes from the first directory entry up to,
// but not including, this record. An archive without directory entries gets
// a zero-size directory starting here.
func (r *run) endOfDirectory(pos position) error {
	const kind = zipfmt.KindEndOfDirectory

	var h zipfmt.EndOfDirectory
	if err := r.in.ReadFixed(&h); err != nil {
		return r.fail(kind, pos, "", err)
	}
	comment, err := r.in.Block(int(h.CommentLength))
	if err != nil {
		return r.fail(kind, pos, "", err)
	}

	start, ok := r.ledger.DirectoryStart()
	if !ok {
		start = pos.out
	}
	if h.DirectorySize, err = sizing.ToUint32(pos.out-start, ErrSizeOverflow); err != nil {
		return r.fail(kind, pos, "", err)
	}
	if h.DirectoryOffset, err = sizing.ToUint32(start, ErrSizeOverflow); err != nil {
		return r.fail(kind, pos, "", err)
	}

	if err := r.emit(zipfmt.SigEndOfDirectory, &h, comment); err != nil {
		return r.fail(kind, pos, "", err)
	}

	if int(h.EntriesTotal) != r.report.DirectoryEntries {
		r.log().Warn("entry count mismatch",
			"recorded", h.EntriesTotal, "seen", r.report.DirectoryEntries)
	}
	r.log().Debug("end of central directory", "in", pos.in, "out", pos.out,
		"directory_offset", h.DirectoryOffset, "directory_size", h.DirectorySize)
	r.reportProgress(kind, "", pos)
	return nil
}
