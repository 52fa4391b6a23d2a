package codec

import (
	"github.com/ValentinKolb/dBytes/lib/serde"
)

// Serialize writes b as text if s is human-readable and as raw bytes otherwise
func Serialize[C TextCodec](s serde.Serializer, b []byte) error {
	if s.IsHumanReadable() {
		var c C
		return s.SerializeString(c.Encode(b))
	}
	return s.SerializeBytes(b)
}

// Deserialize reads bytes written by Serialize. Text is decoded into new memory,
// raw bytes are read with the format's own byte decoding.
func Deserialize[C TextCodec](d serde.Deserializer) ([]byte, error) {
	if d.IsHumanReadable() {
		return decodeString[C](d)
	}
	return d.DeserializeBytes()
}

// DeserializeInto reads exactly len(dst) bytes into dst. A value of any other
// length fails with ErrInvalidLength and leaves dst untouched.
func DeserializeInto[C TextCodec](d serde.Deserializer, dst []byte) error {
	if !d.IsHumanReadable() {
		return d.DeserializeArray(dst)
	}

	b, err := decodeString[C](d)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return serde.Errorf("%w: expected %d bytes, decoded %d", ErrInvalidLength, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

// decodeString reads a string and decodes it with C
func decodeString[C TextCodec](d serde.Deserializer) ([]byte, error) {
	s, err := d.DeserializeString()
	if err != nil {
		return nil, err
	}
	var c C
	b, err := c.Decode(s)
	if err != nil {
		return nil, serde.Errorf("%w: %s: %v", ErrInvalidEncoding, c.Name(), err)
	}
	return b, nil
}
