package zipenc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/zipenc/internal/binfield"
	"github.com/meigma/zipenc/internal/ledger"
	"github.com/meigma/zipenc/internal/namecodec"
	"github.com/meigma/zipenc/internal/zipfmt"
)

// Transcode copies the ZIP archive read from r to w, converting every
// filename from the legacy encoding to UTF-8. Payload bytes, CRCs and sizes
// are copied unchanged; only name lengths and the offsets that depend on
// them are recomputed.
//
// The input is read exactly once, front to back. Local file headers are
// required to precede the central directory, as they do in any archive
// written by a conforming tool: directory entries are resolved against the
// offsets recorded while rewriting the local headers.
//
// Transcode stops at the first error and returns a *RecordError. Whatever was
// written to w up to that point is flushed and must not be treated as a valid
// archive.
func Transcode(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (*Report, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	names, err := cfg.codec()
	if err != nil {
		return nil, err
	}

	inDigester := digest.Canonical.Digester()
	outDigester := digest.Canonical.Digester()

	rn := &run{
		ctx:    ctx,
		cfg:    cfg,
		in:     binfield.NewReader(io.TeeReader(r, inDigester.Hash()), cfg.bufferSize),
		out:    binfield.NewWriter(io.MultiWriter(w, outDigester.Hash()), cfg.bufferSize),
		ledger: ledger.New(),
		names:  names,
		buf:    make([]byte, 32*1024),
	}
	rn.report.Encoding = names.Name()
	rn.log().Info("transcoding archive", "encoding", names.Name(), "utf8_flag", cfg.utf8Flag)

	if err := rn.walk(); err != nil {
		if ferr := rn.out.Flush(); ferr != nil {
			rn.log().Debug("flush after failure", "error", ferr)
		}
		rn.log().Debug("transcoding failed", "error", err)
		return nil, err
	}
	if err := rn.out.Flush(); err != nil {
		return nil, fmt.Errorf("%w: flush output: %w", ErrIO, err)
	}

	rn.report.BytesIn = rn.in.Offset()
	rn.report.BytesOut = rn.out.Offset()
	rn.report.InputDigest = inDigester.Digest()
	rn.report.OutputDigest = outDigester.Digest()

	rn.log().Info("archive transcoded",
		"entries", rn.report.LocalHeaders,
		"renamed", rn.report.RenamedNames,
		"bytes_in", rn.report.BytesIn,
		"bytes_out", rn.report.BytesOut)
	return &rn.report, nil
}

// run is the state of a single transcoding pass. It is created by Transcode,
// handed to every record transcoder, and dropped when the pass ends.
type run struct {
	ctx    context.Context
	cfg    config
	in     *binfield.Reader
	out    *binfield.Writer
	ledger *ledger.Ledger
	names  *namecodec.Codec
	buf    []byte
	report Report
}

// position is where a record starts in the input and output streams.
type position struct {
	in  uint64
	out uint64
}

// log returns the logger, falling back to a discard logger if nil.
func (r *run) log() *slog.Logger {
	if r.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.cfg.logger
}

// walk dispatches records until the input is exhausted.
func (r *run) walk() error {
	for {
		pos := position{in: r.in.Offset(), out: r.out.Offset()}
		if err := r.ctx.Err(); err != nil {
			return r.fail(KindUnknown, pos, "", err)
		}

		done, err := r.in.Exhausted()
		if err != nil {
			return r.fail(KindUnknown, pos, "", err)
		}
		if done {
			return nil
		}

		sig, err := r.in.Uint32()
		if err != nil {
			return r.fail(KindUnknown, pos, "", err)
		}

		kind := zipfmt.KindOf(sig)
		switch kind {
		case zipfmt.KindLocalFile:
			err = r.localFile(pos)
		case zipfmt.KindDirectoryEntry:
			err = r.directoryEntry(pos)
		case zipfmt.KindEndOfDirectory:
			err = r.endOfDirectory(pos)
		case zipfmt.KindArchiveExtraData,
			zipfmt.KindDigitalSignature,
			zipfmt.KindZip64EndOfDirectory,
			zipfmt.KindZip64Locator,
			zipfmt.KindSpanningSignature,
			zipfmt.KindSpanningMarker:
			err = &RecordError{Err: ErrUnsupportedRecord, Kind: kind, Signature: sig, Offset: pos.in}
		case zipfmt.KindUnknown:
			err = &RecordError{Err: ErrUnknownSignature, Kind: kind, Signature: sig, Offset: pos.in}
		}
		if err != nil {
			return err
		}
	}
}

// fail wraps err in a RecordError for the record at pos.
func (r *run) fail(kind RecordKind, pos position, name string, err error) error {
	sentinel, cause := classify(err)
	return &RecordError{Err: sentinel, Cause: cause, Kind: kind, Signature: kind.Signature(), Offset: pos.in, Name: name}
}

// decodeName converts a raw filename to UTF-8. Names already flagged as
// UTF-8 are validated and kept as they are.
func (r *run) decodeName(flags uint16, raw []byte) (string, error) {
	if flags&zipfmt.FlagUTF8 != 0 {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("%w: % x is flagged UTF-8 but is not", namecodec.ErrInvalid, raw)
		}
		return string(raw), nil
	}
	return r.names.Decode(raw)
}

// outputFlags returns the general purpose flags to write for name.
func (r *run) outputFlags(flags uint16, name string) uint16 {
	if r.cfg.utf8Flag && !isASCII(name) {
		return flags | zipfmt.FlagUTF8
	}
	return flags
}

// emit writes a signature, the fixed fields and any variable-length blocks.
func (r *run) emit(sig uint32, fixed any, blocks ...[]byte) error {
	if err := r.out.Uint32(sig); err != nil {
		return err
	}
	if err := r.out.WriteFixed(fixed); err != nil {
		return err
	}
	for _, b := range blocks {
		if err := r.out.Block(b); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) reportProgress(kind RecordKind, name string, pos position) {
	if r.cfg.progress == nil {
		return
	}
	r.cfg.progress(ProgressEvent{
		Kind:         kind,
		Name:         name,
		InputOffset:  pos.in,
		OutputOffset: pos.out,
	})
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
