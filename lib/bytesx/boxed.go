package bytesx

import (
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/serde"
	"slices"
)

// Boxed is an owned buffer that is not meant to grow: after decoding its
// capacity equals its length, so an append always reallocates instead of
// writing past the end of the decoded data.
type Boxed[C codec.TextCodec] []byte

func (b Boxed[C]) MarshalSerde(s serde.Serializer) error {
	return Bytes[C](b).MarshalSerde(s)
}

func (b *Boxed[C]) UnmarshalSerde(d serde.Deserializer) error {
	var inner Bytes[C]
	if err := inner.UnmarshalSerde(d); err != nil {
		return err
	}
	*b = Boxed[C](slices.Clip(inner))
	return nil
}

// BoxedBuf is a Boxed buffer whose content is a ByteBuf
type BoxedBuf[C codec.TextCodec] []byte

// Buf returns the content
func (b BoxedBuf[C]) Buf() ByteBuf[C] {
	return ByteBuf[C](b)
}

func (b BoxedBuf[C]) MarshalSerde(s serde.Serializer) error {
	return Boxed[C](b).MarshalSerde(s)
}

func (b *BoxedBuf[C]) UnmarshalSerde(d serde.Deserializer) error {
	var inner Boxed[C]
	if err := inner.UnmarshalSerde(d); err != nil {
		return err
	}
	*b = BoxedBuf[C](inner)
	return nil
}
