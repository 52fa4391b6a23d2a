// Package bytesx implements byte containers that serialize as raw bytes in
// binary formats and as hex or base64 text in human-readable formats.
//
// Every container is generic over the text codec (codec.Hex or codec.Base64)
// and implements serde.Marshaler / serde.Unmarshaler as well as the hooks of
// encoding/json, gopkg.in/yaml.v3 and github.com/fxamacker/cbor/v2, so it can
// be used directly as a struct field:
//
//	type Blob struct {
//	    Data   bytesx.Bytes[codec.Hex]                               `json:"data"`
//	    Digest bytesx.Option[bytesx.Array[codec.Hex, [32]byte]]      `json:"digest"`
//	    Raw    bytesx.BytesRef[codec.Base64]                         `json:"raw"`
//	}
//
// Containers:
//
//   - Bytes: owned, growable buffer.
//   - ByteBuf: Bytes classified as an opaque byte string. IntoDeserializer
//     turns it into a binary input for any other container.
//   - BytesRef: view into the decoder input. Never copies.
//   - Array: fixed-length array of any [N]byte type, decoded length must be N.
//   - ArrayRef: pointer to a fixed-length array inside the decoder input.
//   - Option: absent or present value of any other container. Null and
//     unit both decode as absent.
//   - Cow: borrowed if the input can lend the bytes, owned otherwise.
//   - CowBuf: Cow whose payload is classified as a ByteBuf.
//   - Boxed: owned buffer whose capacity equals its length.
//   - BoxedBuf: Boxed whose payload is classified as a ByteBuf.
//
// Any container can be boxed behind a pointer field, nil encodes as null.
//
// Borrowing:
//
//	BytesRef and ArrayRef promise a view into the input. Text has to be decoded
//	into new memory, so decoding them from a human-readable format fails with
//	codec.ErrUnsupportedOperation instead of handing out a copy. The same holds
//	for binary inputs that can not lend the bytes (e.g. chunked CBOR strings).
//	Borrowed data is read-only and only valid while the input buffer is.
//
// Thread Safety:
//
//	Containers are plain values without internal state. Encoding and decoding
//	are safe for concurrent use on different values.
package bytesx
