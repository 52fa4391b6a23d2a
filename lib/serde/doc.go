// Package serde defines the contract between byte container types and the
// serialization formats that carry them. It is intentionally small: a format
// only has to be able to emit and consume strings, raw byte values, optional
// markers and, for binary formats that have no dedicated byte string type, a
// sequence of unsigned integers.
//
// The package focuses on:
//   - A capability flag (IsHumanReadable) every format reports per call
//   - Separate owned and borrowed byte primitives, so a decode that promises a
//     zero-copy view can never be satisfied by a silent allocation
//   - A single error type (Error) formats and containers use to report
//     deserialization failures with a readable message
//
// Key Components:
//
//   - Serializer / Deserializer: the primitives a format exposes.
//
//   - Marshaler / Unmarshaler: implemented by the types that want to be written
//     through a Serializer or read through a Deserializer.
//
//   - Content: what a binary format actually holds where bytes are expected
//     (borrowed bytes, borrowed string, owned bytes, owned string or a
//     sequence of numbers), used by copy-on-write containers.
//
// Bindings to concrete formats live in the sub packages:
//
//   - jsonserde: encoding/json, human-readable
//   - yamlserde: gopkg.in/yaml.v3, human-readable
//   - cborserde: github.com/fxamacker/cbor/v2, binary with zero-copy borrows
//   - serdetest: a token stream used to test containers in both modes
//
// Thread Safety:
//
//	Serializers and Deserializers are single use and must not be shared
//	between goroutines. The package level functions are stateless.
package serde
