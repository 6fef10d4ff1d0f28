package zipenc

import (
	"log/slog"

	"golang.org/x/text/encoding"

	"github.com/meigma/zipenc/internal/namecodec"
)

// DefaultEncoding is the IANA name of the legacy encoding used when none is
// configured.
const DefaultEncoding = namecodec.DefaultName

// config holds configuration for a transcoding run.
type config struct {
	logger       *slog.Logger
	progress     ProgressFunc
	encoding     encoding.Encoding
	encodingName string
	bufferSize   int
	utf8Flag     bool
}

// Option configures a transcoding run.
type Option func(*config)

// WithLogger sets the logger. Per-record events are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithEncoding sets the legacy encoding filenames are decoded from.
func WithEncoding(enc encoding.Encoding) Option {
	return func(cfg *config) {
		cfg.encoding = enc
		cfg.encodingName = ""
	}
}

// WithEncodingName sets the legacy encoding by IANA name or alias, for
// example "Shift_JIS" or "EUC-JP". Unknown names make Transcode fail with
// ErrUnknownEncoding.
func WithEncodingName(name string) Option {
	return func(cfg *config) {
		cfg.encodingName = name
		cfg.encoding = nil
	}
}

// WithUTF8Flag controls whether general purpose bit 11 is set on rewritten
// records whose name is not plain ASCII. It is off by default, which leaves
// every fixed field other than the name length untouched.
func WithUTF8Flag(on bool) Option {
	return func(cfg *config) {
		cfg.utf8Flag = on
	}
}

// WithProgress sets a callback invoked after each record is written.
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// WithBufferSize sets the read and write buffer sizes. Non-positive values
// use the default of 64 KiB.
func WithBufferSize(n int) Option {
	return func(cfg *config) {
		cfg.bufferSize = n
	}
}

// codec resolves the configured legacy encoding.
func (cfg *config) codec() (*namecodec.Codec, error) {
	switch {
	case cfg.encoding != nil:
		return namecodec.New(cfg.encoding), nil
	case cfg.encodingName != "":
		return namecodec.Lookup(cfg.encodingName)
	default:
		return namecodec.Default(), nil
	}
}
