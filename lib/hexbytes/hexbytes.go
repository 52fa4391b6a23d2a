// Package hexbytes fixes the text codec of the bytesx containers to lowercase hexadecimal.
//
// Usage:
//
//	type Key struct {
//	    ID    hexbytes.Bytes                   `json:"id"`
//	    Value bytesx.Array[codec.Hex, [4]byte] `json:"value"` // "deadbeef" in JSON
//	}
package hexbytes

import (
	"github.com/ValentinKolb/dBytes/lib/bytesx"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/serde"
)

type (
	Bytes    = bytesx.Bytes[codec.Hex]
	BytesRef = bytesx.BytesRef[codec.Hex]
	ByteBuf  = bytesx.ByteBuf[codec.Hex]
	Cow      = bytesx.Cow[codec.Hex]
	CowBuf   = bytesx.CowBuf[codec.Hex]
	Boxed    = bytesx.Boxed[codec.Hex]
	BoxedBuf = bytesx.BoxedBuf[codec.Hex]
)

// NewArray wraps a fixed-length byte array
func NewArray[A any](v A) bytesx.Array[codec.Hex, A] {
	return bytesx.NewArray[codec.Hex](v)
}

// Borrowed returns a Cow that references b without owning it
func Borrowed(b []byte) Cow {
	return bytesx.Borrowed[codec.Hex](b)
}

// Owned returns a Cow that owns b
func Owned(b []byte) Cow {
	return bytesx.Owned[codec.Hex](b)
}

// Serialize writes b as hex text to human-readable formats and as raw bytes otherwise
func Serialize(s serde.Serializer, b []byte) error {
	return codec.Serialize[codec.Hex](s, b)
}

// Deserialize reads bytes written by Serialize
func Deserialize(d serde.Deserializer) ([]byte, error) {
	return codec.Deserialize[codec.Hex](d)
}

// Encode returns the hex text of b
func Encode(b []byte) string {
	return codec.Hex{}.Encode(b)
}

// Decode returns the bytes of hex text. Malformed text fails with codec.ErrInvalidEncoding.
func Decode(s string) ([]byte, error) {
	b, err := codec.Hex{}.Decode(s)
	if err != nil {
		return nil, serde.Errorf("%w: hex: %v", codec.ErrInvalidEncoding, err)
	}
	return b, nil
}
