// Package namecodec converts filenames from a legacy character encoding to
// UTF-8 without substituting undecodable bytes.
package namecodec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
)

// DefaultName is the IANA name of the default legacy encoding.
const DefaultName = "Shift_JIS"

var (
	// ErrInvalid is returned when bytes are not valid in the legacy encoding.
	ErrInvalid = errors.New("namecodec: invalid byte sequence")

	// ErrUnknownEncoding is returned when an encoding name cannot be resolved.
	ErrUnknownEncoding = errors.New("namecodec: unknown encoding")
)

// Codec decodes legacy-encoded names.
type Codec struct {
	enc  encoding.Encoding
	name string
}

// Default returns a codec for Shift JIS. The x/text decoder covers the
// Windows-31J (code page 932) extensions.
func Default() *Codec {
	return &Codec{enc: japanese.ShiftJIS, name: DefaultName}
}

// New returns a codec for enc.
func New(enc encoding.Encoding) *Codec {
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		name = fmt.Sprint(enc)
	}
	return &Codec{enc: enc, name: name}
}

// Lookup returns a codec for the encoding with the given IANA name or alias.
func Lookup(name string) (*Codec, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownEncoding, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownEncoding, name)
	}
	return New(enc), nil
}

// Name returns the IANA name of the legacy encoding.
func (c *Codec) Name() string {
	return c.name
}

// Decode converts raw to a UTF-8 string. Any byte sequence the decoder would
// replace with U+FFFD is rejected with ErrInvalid.
func (c *Codec) Decode(raw []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: % x: %w", ErrInvalid, raw, err)
	}
	s := string(out)
	if strings.ContainsRune(s, utf8.RuneError) || !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: % x is not valid %s", ErrInvalid, raw, c.name)
	}
	return s, nil
}
