package zipenc

import (
	"github.com/meigma/zipenc/internal/sizing"
	"github.com/meigma/zipenc/internal/zipfmt"
)

// localFile rewrites a local file header and copies its payload. The input
// is positioned just after the signature.
func (r *run) localFile(pos position) error {
	const kind = zipfmt.KindLocalFile

	var h zipfmt.LocalFileHeader
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

	name, err := r.decodeName(h.Flags, rawName)
	if err != nil {
		return r.fail(kind, pos, "", err)
	}
	if h.NameLength, err = sizing.ToUint16(len(name), ErrSizeOverflow); err != nil {
		return r.fail(kind, pos, name, err)
	}
	h.Flags = r.outputFlags(h.Flags, name)

	if err := r.emit(zipfmt.SigLocalFile, &h, []byte(name), extra); err != nil {
		return r.fail(kind, pos, name, err)
	}
	if err := r.in.CopyN(r.ctx, r.out, uint64(h.CompressedSize), r.buf); err != nil {
		return r.fail(kind, pos, name, err)
	}

	if replaced := r.ledger.Put(name, pos.out); replaced {
		r.report.DuplicateNames++
		r.log().Warn("duplicate filename; directory entries will point at the later header",
			"name", name, "offset", pos.out)
	}
	r.report.LocalHeaders++
	if name != string(rawName) {
		r.report.RenamedNames++
	}

	r.log().Debug("local file header", "name", name, "in", pos.in, "out", pos.out, "size", h.CompressedSize)
	r.reportProgress(kind, name, pos)
	return nil
}
