// Package format provides the document formats of dbytes. It defines a common
// interface for encoding Go values with the serialization frameworks the byte
// containers of bytesx plug into, and a document type built from those containers.
//
// Key Components:
//
//   - IFormat: Core interface that all format implementations must satisfy.
//
//   - jsonFormatImpl: encoding/json. Human-readable, bytes are written as hex or base64 text.
//
//   - yamlFormatImpl: gopkg.in/yaml.v3. Human-readable, bytes are written as hex or base64 text.
//
//   - cborFormatImpl: github.com/fxamacker/cbor/v2 with deterministic encoding.
//     Binary, bytes are written as CBOR byte strings and decoded without copying.
//
//   - Registry: formats are looked up by name with Get. Custom formats can be added with Register.
//
//   - Document: a payload with its size and an optional SHA-256 digest. EncodeDocument,
//     DecodeDocument and ConvertDocument work on documents without fixing the codec at
//     compile time, the codec is read from the document itself.
//
// Thread Safety:
//
//	All format implementations are stateless and safe for concurrent use. The
//	registry is backed by xsync.MapOf.
//
// Usage:
//
//	f, _ := format.Get("json")
//	data, err := format.EncodeDocument(f, "base64", payload, true)
//	// {"encoding":"base64","size":3,"data":"AQID","digest":"..."}
//	decoded, err := format.DecodeDocument(f, data)
package format
