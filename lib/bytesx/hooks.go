package bytesx

// Hooks that plug the containers into encoding/json, gopkg.in/yaml.v3 and
// github.com/fxamacker/cbor/v2. All of them delegate to the serde bindings.

import (
	"encoding/json"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/serde"
	"github.com/ValentinKolb/dBytes/lib/serde/cborserde"
	"github.com/ValentinKolb/dBytes/lib/serde/jsonserde"
	"github.com/ValentinKolb/dBytes/lib/serde/yamlserde"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// --------------------------------------------------------------------------
// Bytes
// --------------------------------------------------------------------------

func (b Bytes[C]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(b) }

func (b *Bytes[C]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, b) }

func (b Bytes[C]) MarshalYAML() (any, error) { return yamlserde.Marshal(b) }

func (b *Bytes[C]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, b) }

func (b Bytes[C]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(b) }

func (b *Bytes[C]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, b) }

// --------------------------------------------------------------------------
// BytesRef
// --------------------------------------------------------------------------

func (b BytesRef[C]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(b) }

func (b *BytesRef[C]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, b) }

func (b BytesRef[C]) MarshalYAML() (any, error) { return yamlserde.Marshal(b) }

func (b *BytesRef[C]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, b) }

func (b BytesRef[C]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(b) }

func (b *BytesRef[C]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, b) }

// --------------------------------------------------------------------------
// Array
// --------------------------------------------------------------------------

func (a Array[C, A]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(a) }

func (a *Array[C, A]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, a) }

func (a Array[C, A]) MarshalYAML() (any, error) { return yamlserde.Marshal(a) }

func (a *Array[C, A]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, a) }

func (a Array[C, A]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(a) }

func (a *Array[C, A]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, a) }

// --------------------------------------------------------------------------
// ArrayRef
// --------------------------------------------------------------------------

func (a ArrayRef[C, A]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(a) }

func (a *ArrayRef[C, A]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, a) }

func (a ArrayRef[C, A]) MarshalYAML() (any, error) { return yamlserde.Marshal(a) }

func (a *ArrayRef[C, A]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, a) }

func (a ArrayRef[C, A]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(a) }

func (a *ArrayRef[C, A]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, a) }

// --------------------------------------------------------------------------
// Option
// --------------------------------------------------------------------------

func (o Option[T]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(o) }

func (o *Option[T]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, o) }

func (o Option[T]) MarshalYAML() (any, error) { return yamlserde.Marshal(o) }

func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, o) }

func (o Option[T]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(o) }

func (o *Option[T]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, o) }

// --------------------------------------------------------------------------
// Cow
// --------------------------------------------------------------------------

func (c Cow[C]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(c) }

func (c *Cow[C]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, c) }

func (c Cow[C]) MarshalYAML() (any, error) { return yamlserde.Marshal(c) }

func (c *Cow[C]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, c) }

func (c Cow[C]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(c) }

func (c *Cow[C]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, c) }

// --------------------------------------------------------------------------
// CowBuf
// --------------------------------------------------------------------------

func (c CowBuf[C]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(c) }

func (c *CowBuf[C]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, c) }

func (c CowBuf[C]) MarshalYAML() (any, error) { return yamlserde.Marshal(c) }

func (c *CowBuf[C]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, c) }

func (c CowBuf[C]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(c) }

func (c *CowBuf[C]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, c) }

// --------------------------------------------------------------------------
// Boxed
// --------------------------------------------------------------------------

func (b Boxed[C]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(b) }

func (b *Boxed[C]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, b) }

func (b Boxed[C]) MarshalYAML() (any, error) { return yamlserde.Marshal(b) }

func (b *Boxed[C]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, b) }

func (b Boxed[C]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(b) }

func (b *Boxed[C]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, b) }

// --------------------------------------------------------------------------
// BoxedBuf
// --------------------------------------------------------------------------

func (b BoxedBuf[C]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(b) }

func (b *BoxedBuf[C]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, b) }

func (b BoxedBuf[C]) MarshalYAML() (any, error) { return yamlserde.Marshal(b) }

func (b *BoxedBuf[C]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, b) }

func (b BoxedBuf[C]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(b) }

func (b *BoxedBuf[C]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, b) }

// --------------------------------------------------------------------------
// ByteBuf
// --------------------------------------------------------------------------

func (b ByteBuf[C]) MarshalJSON() ([]byte, error) { return jsonserde.Marshal(b) }

func (b *ByteBuf[C]) UnmarshalJSON(data []byte) error { return jsonserde.Unmarshal(data, b) }

func (b ByteBuf[C]) MarshalYAML() (any, error) { return yamlserde.Marshal(b) }

func (b *ByteBuf[C]) UnmarshalYAML(node *yaml.Node) error { return yamlserde.Unmarshal(node, b) }

func (b ByteBuf[C]) MarshalCBOR() ([]byte, error) { return cborserde.Marshal(b) }

func (b *ByteBuf[C]) UnmarshalCBOR(data []byte) error { return cborserde.Unmarshal(data, b) }

var (
	_ json.Marshaler   = Bytes[codec.Hex]{}
	_ json.Marshaler   = ByteBuf[codec.Hex]{}
	_ json.Unmarshaler = (*Cow[codec.Base64])(nil)
	_ yaml.Marshaler   = Array[codec.Hex, [4]byte]{}
	_ yaml.Unmarshaler = (*Option[Bytes[codec.Hex]])(nil)
	_ cbor.Marshaler   = BytesRef[codec.Base64]{}
	_ cbor.Unmarshaler = (*ArrayRef[codec.Hex, [4]byte])(nil)

	_ serde.Marshaler   = BoxedBuf[codec.Hex]{}
	_ serde.Unmarshaler = (*CowBuf[codec.Hex])(nil)
)
