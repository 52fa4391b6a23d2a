package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// TextCodec converts bytes to and from their textual representation
type TextCodec interface {
	// Name returns the name of the codec (e.g. "hex")
	Name() string
	// Encode returns the text form of b
	Encode(b []byte) string
	// Decode returns the bytes encoded in s
	Decode(s string) ([]byte, error)
}

// Hex is the lowercase hexadecimal TextCodec
type Hex struct{}

// Base64 is the padded standard base64 TextCodec
type Base64 struct{}

var (
	_ TextCodec = Hex{}
	_ TextCodec = Base64{}

	base64Encoding = base64.StdEncoding.Strict()
)

// --------------------------------------------------------------------------
// Hex
// --------------------------------------------------------------------------

func (Hex) Name() string {
	return "hex"
}

func (Hex) Encode(b []byte) string {
	return hex.EncodeToString(b)
}

func (Hex) Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// --------------------------------------------------------------------------
// Base64
// --------------------------------------------------------------------------

func (Base64) Name() string {
	return "base64"
}

func (Base64) Encode(b []byte) string {
	return base64Encoding.EncodeToString(b)
}

func (Base64) Decode(s string) ([]byte, error) {
	// the decoder of the standard library silently skips line breaks
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}
	return base64Encoding.DecodeString(s)
}

// --------------------------------------------------------------------------
// Lookup
// --------------------------------------------------------------------------

// ErrUnknownCodec is returned by Lookup for names that are not a known codec
var ErrUnknownCodec = errors.New("unknown codec")

// Names returns the names of all text codecs
func Names() []string {
	return []string{Hex{}.Name(), Base64{}.Name()}
}

// Lookup returns the codec with the given name
func Lookup(name string) (TextCodec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Hex{}.Name():
		return Hex{}, nil
	case Base64{}.Name():
		return Base64{}, nil
	default:
		return nil, fmt.Errorf("%w %q: must be one of %s", ErrUnknownCodec, name, strings.Join(Names(), ", "))
	}
}
