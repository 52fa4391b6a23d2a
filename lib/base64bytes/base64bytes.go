// Package base64bytes fixes the text codec of the bytesx containers to padded standard base64.
//
// Usage:
//
//	type Key struct {
//	    ID    base64bytes.Bytes                   `json:"id"`
//	    Value bytesx.Array[codec.Base64, [4]byte] `json:"value"` // "3q2+7w==" in JSON
//	}
package base64bytes

import (
	"github.com/ValentinKolb/dBytes/lib/bytesx"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/serde"
)

type (
	Bytes    = bytesx.Bytes[codec.Base64]
	BytesRef = bytesx.BytesRef[codec.Base64]
	ByteBuf  = bytesx.ByteBuf[codec.Base64]
	Cow      = bytesx.Cow[codec.Base64]
	CowBuf   = bytesx.CowBuf[codec.Base64]
	Boxed    = bytesx.Boxed[codec.Base64]
	BoxedBuf = bytesx.BoxedBuf[codec.Base64]
)

// NewArray wraps a fixed-length byte array
func NewArray[A any](v A) bytesx.Array[codec.Base64, A] {
	return bytesx.NewArray[codec.Base64](v)
}

// Borrowed returns a Cow that references b without owning it
func Borrowed(b []byte) Cow {
	return bytesx.Borrowed[codec.Base64](b)
}

// Owned returns a Cow that owns b
func Owned(b []byte) Cow {
	return bytesx.Owned[codec.Base64](b)
}

// Serialize writes b as base64 text to human-readable formats and as raw bytes otherwise
func Serialize(s serde.Serializer, b []byte) error {
	return codec.Serialize[codec.Base64](s, b)
}

// Deserialize reads bytes written by Serialize
func Deserialize(d serde.Deserializer) ([]byte, error) {
	return codec.Deserialize[codec.Base64](d)
}

// Encode returns the base64 text of b
func Encode(b []byte) string {
	return codec.Base64{}.Encode(b)
}

// Decode returns the bytes of base64 text. Malformed text fails with codec.ErrInvalidEncoding.
func Decode(s string) ([]byte, error) {
	b, err := codec.Base64{}.Decode(s)
	if err != nil {
		return nil, serde.Errorf("%w: base64: %v", codec.ErrInvalidEncoding, err)
	}
	return b, nil
}
