package bytesx

import (
	"errors"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/serde"
)

// ByteBuf marks a byte slice as an opaque byte string, as opposed to a
// sequence of numbers that happen to fit into a byte. On the wire it behaves
// like Bytes: C text in human-readable formats, a raw byte value otherwise.
type ByteBuf[C codec.TextCodec] []byte

func (b ByteBuf[C]) MarshalSerde(s serde.Serializer) error {
	return codec.Serialize[C](s, b)
}

func (b *ByteBuf[C]) UnmarshalSerde(d serde.Deserializer) error {
	v, err := codec.Deserialize[C](d)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// IntoDeserializer returns a binary Deserializer over b. Containers decoded
// from it get their own copy of the bytes.
func (b ByteBuf[C]) IntoDeserializer() serde.Deserializer {
	return serde.NewBytesDeserializer(b)
}

// Cow holds bytes that are either borrowed from a decoder input or owned.
// Borrowed bytes are read-only, use Mut to get a writable slice.
type Cow[C codec.TextCodec] struct {
	data     []byte
	borrowed bool
}

// Borrowed returns a Cow that references b without owning it
func Borrowed[C codec.TextCodec](b []byte) Cow[C] {
	return Cow[C]{data: b, borrowed: true}
}

// Owned returns a Cow that owns b
func Owned[C codec.TextCodec](b []byte) Cow[C] {
	return Cow[C]{data: b}
}

// Bytes returns the content. The slice must not be modified if the Cow is borrowed.
func (c Cow[C]) Bytes() []byte {
	return c.data
}

// Len returns the number of bytes
func (c Cow[C]) Len() int {
	return len(c.data)
}

// IsBorrowed returns true if the content references memory the Cow does not own
func (c Cow[C]) IsBorrowed() bool {
	return c.borrowed
}

// ToOwned returns a Cow that owns its content, copying it if necessary
func (c Cow[C]) ToOwned() Cow[C] {
	if !c.borrowed {
		return c
	}
	return Owned[C](append([]byte{}, c.data...))
}

// Mut returns a writable slice, converting the Cow to owned first
func (c *Cow[C]) Mut() []byte {
	*c = c.ToOwned()
	return c.data
}

// Strong reclassifies the content as a ByteBuf, keeping it borrowed or owned
func (c Cow[C]) Strong() CowBuf[C] {
	return CowBuf[C](c)
}

func (c Cow[C]) MarshalSerde(s serde.Serializer) error {
	return codec.Serialize[C](s, c.data)
}

// UnmarshalSerde decodes text into owned memory. From binary formats it keeps
// whatever the format can lend, in order of preference: borrowed bytes,
// borrowed string, owned bytes, owned string and finally a sequence of numbers.
func (c *Cow[C]) UnmarshalSerde(d serde.Deserializer) error {
	if d.IsHumanReadable() {
		b, err := codec.Deserialize[C](d)
		if err != nil {
			return err
		}
		*c = Owned[C](b)
		return nil
	}

	content, err := d.DeserializeContent()
	if err != nil {
		return err
	}

	switch content.Kind {
	case serde.KindBorrowedBytes, serde.KindBorrowedString:
		*c = Borrowed[C](content.Bytes)
	case serde.KindBytes:
		*c = Owned[C](content.Bytes)
	case serde.KindString:
		*c = Owned[C]([]byte(content.String))
	case serde.KindSeq:
		b, err := serde.CollectBytes(content.Seq)
		if errors.Is(err, serde.ErrInvalidValue) {
			return serde.Errorf("%w: %w", codec.ErrInvalidEncoding, err)
		}
		if err != nil {
			return err
		}
		*c = Owned[C](b)
	default:
		return serde.InvalidType("a byte-like value", content.Kind.String())
	}
	return nil
}

// CowBuf is a Cow whose content is a ByteBuf
type CowBuf[C codec.TextCodec] Cow[C]

// Buf returns the content. The slice must not be modified if the CowBuf is borrowed.
func (c CowBuf[C]) Buf() ByteBuf[C] {
	return ByteBuf[C](c.data)
}

// IsBorrowed returns true if the content references memory the CowBuf does not own
func (c CowBuf[C]) IsBorrowed() bool {
	return c.borrowed
}

// Cow returns the content as a plain Cow
func (c CowBuf[C]) Cow() Cow[C] {
	return Cow[C](c)
}

func (c CowBuf[C]) MarshalSerde(s serde.Serializer) error {
	return Cow[C](c).MarshalSerde(s)
}

func (c *CowBuf[C]) UnmarshalSerde(d serde.Deserializer) error {
	var inner Cow[C]
	if err := inner.UnmarshalSerde(d); err != nil {
		return err
	}
	*c = inner.Strong()
	return nil
}
