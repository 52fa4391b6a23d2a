package bytesx

import (
	"errors"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/serde"
)

// Bytes is an owned byte buffer
type Bytes[C codec.TextCodec] []byte

func (b Bytes[C]) MarshalSerde(s serde.Serializer) error {
	return codec.Serialize[C](s, b)
}

func (b *Bytes[C]) UnmarshalSerde(d serde.Deserializer) error {
	v, err := codec.Deserialize[C](d)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// BytesRef is a read-only view into the input it was decoded from
type BytesRef[C codec.TextCodec] []byte

func (b BytesRef[C]) MarshalSerde(s serde.Serializer) error {
	return codec.Serialize[C](s, b)
}

func (b *BytesRef[C]) UnmarshalSerde(d serde.Deserializer) error {
	v, err := borrow(d, "BytesRef")
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// IntoDeserializer returns a binary Deserializer that lends b to containers
// able to keep a view (BytesRef, ArrayRef, Cow)
func (b BytesRef[C]) IntoDeserializer() serde.Deserializer {
	return serde.NewBorrowedBytesDeserializer(b)
}

// borrow reads a byte value as a view into the input of d
func borrow(d serde.Deserializer, container string) ([]byte, error) {
	if d.IsHumanReadable() {
		return nil, serde.Errorf("%w: %s can not borrow from a human-readable format, decoded text is always new memory", codec.ErrUnsupportedOperation, container)
	}
	v, err := d.DeserializeBorrowedBytes()
	if errors.Is(err, serde.ErrBorrowUnavailable) {
		return nil, serde.Errorf("%w: %s: %w", codec.ErrUnsupportedOperation, container, err)
	}
	return v, err
}
