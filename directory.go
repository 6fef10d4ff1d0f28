package zipenc

import (
	"github.com/meigma/zipenc/internal/sizing"
	"github.com/meigma/zipenc/internal/zipfmt"
)

// directoryEntry rewrites a central directory file header, pointing it at the
// output offset of its local header. The input is positioned just after the
// signature.
func (r *run) directoryEntry(pos position) error {
	const kind = zipfmt.KindDirectoryEntry

	if r.ledger.MarkDirectoryStart(pos.out) {
		r.log().Debug("central directory starts", "in", pos.in, "out", pos.out)
	}

	var h zipfmt.DirectoryHeader
	if err := r.in.ReadFixed(&h); err != nil {
		return r.fail(kind, pos, "", err)
	}
	rawName, err := r.in.Block(int(h.NameLength))
	if err != nil {
		return r.fail(kind, pos, "", err)
	}
	extra, err := r.in.Block(int(h.ExtraLength))
	if err != nil {
		return r.fail(kind, pos, string(rawName), err)
	}
	// Comments are copied as they are, in whatever encoding they came in.
	comment, err := r.in.Block(int(h.CommentLength))
	if err != nil {
		return r.fail(kind, pos, string(rawName), err)
	}

	name, err := r.decodeName(h.Flags, rawName)
	if err != nil {
		return r.fail(kind, pos, "", err)
	}
	off, ok := r.ledger.Lookup(name)
	if !ok {
		return r.fail(kind, pos, name, ErrLedgerMiss)
	}
	if h.LocalHeaderOffset, err = sizing.ToUint32(off, ErrSizeOverflow); err != nil {
		return r.fail(kind, pos, name, err)
	}
	if h.NameLength, err = sizing.ToUint16(len(name), ErrSizeOverflow); err != nil {
		return r.fail(kind, pos, name, err)
	}
	h.Flags = r.outputFlags(h.Flags, name)

	if err := r.emit(zipfmt.SigDirectoryEntry, &h, []byte(name), extra, comment); err != nil {
		return r.fail(kind, pos, name, err)
	}

	r.report.DirectoryEntries++
	r.log().Debug("directory entry", "name", name, "in", pos.in, "out", pos.out, "local_header", off)
	r.reportProgress(kind, name, pos)
	return nil
}
