// Package codec selects how a byte sequence is represented by a format.
//
// For human-readable formats (JSON, YAML) bytes are written as text using a
// TextCodec, for binary formats (CBOR) they are written unchanged as a raw byte
// value. The decision is made on every call from the format's IsHumanReadable
// flag, it is never cached.
//
// Text codecs:
//
//   - Hex: lowercase, two digits per byte, no separators. Decoding accepts
//     upper and lower case digits.
//
//   - Base64: standard alphabet (RFC 4648 §4) with '=' padding. Decoding is
//     strict: padding is required, trailing bits must be zero and line breaks
//     are rejected.
//
// The codec is chosen at compile time as a type argument, so every container
// instantiated with the same codec has identical wire behaviour:
//
//	err := codec.Serialize[codec.Hex](s, data)
//	data, err := codec.Deserialize[codec.Base64](d)
//
// Errors:
//
//	Decode failures are returned as *serde.Error values wrapping one of
//	ErrInvalidEncoding, ErrInvalidLength or ErrUnsupportedOperation and can be
//	matched with errors.Is. Encoding never fails on its own.
package codec
