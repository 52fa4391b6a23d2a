package serde

import (
	"unicode/utf8"
)

// BytesDeserializer is a binary Deserializer over a single in-memory byte
// value. It lets a container be decoded from bytes that were already
// extracted from some input, without a format in between.
type BytesDeserializer struct {
	value    []byte
	borrowed bool
}

// NewBytesDeserializer returns a Deserializer that hands out copies of b
func NewBytesDeserializer(b []byte) *BytesDeserializer {
	return &BytesDeserializer{value: b}
}

// NewBorrowedBytesDeserializer returns a Deserializer that lends b itself
// to containers that can keep a view
func NewBorrowedBytesDeserializer(b []byte) *BytesDeserializer {
	return &BytesDeserializer{value: b, borrowed: true}
}

func (d *BytesDeserializer) IsHumanReadable() bool {
	return false
}

func (d *BytesDeserializer) DeserializeString() (string, error) {
	if !utf8.Valid(d.value) {
		return "", Errorf("%w: bytes are not valid UTF-8", ErrInvalidValue)
	}
	return string(d.value), nil
}

func (d *BytesDeserializer) DeserializeBytes() ([]byte, error) {
	return append([]byte{}, d.value...), nil
}

func (d *BytesDeserializer) DeserializeBorrowedBytes() ([]byte, error) {
	if !d.borrowed {
		return nil, Errorf("%w: value is owned by the deserializer", ErrBorrowUnavailable)
	}
	return d.value, nil
}

func (d *BytesDeserializer) DeserializeArray(dst []byte) error {
	if len(d.value) != len(dst) {
		return Errorf("%w: expected %d bytes, found %d", ErrInvalidLength, len(dst), len(d.value))
	}
	copy(dst, d.value)
	return nil
}

func (d *BytesDeserializer) DeserializeOption() (bool, error) {
	return false, InvalidType("an optional value", "bytes")
}

func (d *BytesDeserializer) DeserializeContent() (Content, error) {
	if d.borrowed {
		return Content{Kind: KindBorrowedBytes, Bytes: d.value}, nil
	}
	return Content{Kind: KindBytes, Bytes: append([]byte{}, d.value...)}, nil
}
