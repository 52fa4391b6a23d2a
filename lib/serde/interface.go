package serde

// Serializer is the write side of a format
type Serializer interface {
	// IsHumanReadable reports whether the format is meant to be read by humans (e.g. JSON).
	// Containers use it to choose between a textual and a raw byte representation.
	IsHumanReadable() bool
	// SerializeString writes a string value
	SerializeString(v string) error
	// SerializeBytes writes a raw byte value
	SerializeBytes(v []byte) error
	// SerializeNone writes the marker for an absent optional value
	SerializeNone() error
	// SerializeSome writes a present optional value by handing the
	// serializer to the inner Marshaler
	SerializeSome(v Marshaler) error
}

// Deserializer is the read side of a format. A Deserializer reads exactly one value.
type Deserializer interface {
	// IsHumanReadable must return the same value as the Serializer of the same format
	IsHumanReadable() bool
	// DeserializeString reads a string value
	DeserializeString() (string, error)
	// DeserializeBytes reads a raw byte value into newly allocated memory.
	// Binary formats also accept a string (its UTF-8 bytes) and a sequence of numbers.
	DeserializeBytes() ([]byte, error)
	// DeserializeBorrowedBytes reads a raw byte value as a view into the input.
	// It returns an error wrapping ErrBorrowUnavailable if the format can not
	// provide such a view for the current input.
	DeserializeBorrowedBytes() ([]byte, error)
	// DeserializeArray reads a raw byte value of exactly len(dst) bytes into dst.
	// A value of any other length is reported with an error wrapping ErrInvalidLength
	// and leaves dst untouched.
	DeserializeArray(dst []byte) error
	// DeserializeOption reports whether an optional value is present. Null and
	// unit markers count as absent. If it is present, the same Deserializer
	// continues with the inner value.
	DeserializeOption() (bool, error)
	// DeserializeContent reads whatever byte-like value the format holds
	DeserializeContent() (Content, error)
}

// Marshaler is implemented by types that can write themselves to a Serializer
type Marshaler interface {
	MarshalSerde(s Serializer) error
}

// Unmarshaler is implemented by types that can read themselves from a Deserializer
type Unmarshaler interface {
	UnmarshalSerde(d Deserializer) error
}

// SeqAccess iterates a sequence of unsigned integers
type SeqAccess interface {
	// SizeHint returns the number of elements announced by the input, if any.
	// The hint is untrusted.
	SizeHint() (int, bool)
	// Next returns the next element. ok is false once the sequence is exhausted.
	Next() (v uint64, ok bool, err error)
}

// ContentKind identifies the shape of a byte-like value held by a format
type ContentKind uint8

const (
	KindUnknown ContentKind = iota
	// KindBorrowedBytes is a byte value that aliases the input (Content.Bytes)
	KindBorrowedBytes
	// KindBorrowedString is a text value that aliases the input (Content.Bytes holds its UTF-8 bytes)
	KindBorrowedString
	// KindBytes is a byte value in memory owned by the caller (Content.Bytes)
	KindBytes
	// KindString is a text value owned by the caller (Content.String)
	KindString
	// KindSeq is a sequence of numbers (Content.Seq)
	KindSeq
)

func (k ContentKind) String() string {
	switch k {
	case KindBorrowedBytes:
		return "borrowed bytes"
	case KindBorrowedString:
		return "borrowed string"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindSeq:
		return "sequence"
	default:
		return "unknown"
	}
}

// Content is a byte-like value as it was found in the input
type Content struct {
	Kind   ContentKind
	Bytes  []byte
	String string
	Seq    SeqAccess
}

// IsBorrowed returns true if the content aliases the input
func (c Content) IsBorrowed() bool {
	return c.Kind == KindBorrowedBytes || c.Kind == KindBorrowedString
}
