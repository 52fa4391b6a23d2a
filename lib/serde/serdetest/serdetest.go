// Package serdetest provides an in-memory token format for testing serde
// containers. The human-readable flag is chosen per Serializer/Deserializer, so
// the same container can be exercised in textual and binary mode without a
// real format, and every borrowing path can be checked for aliasing.
package serdetest

import (
	"fmt"
	"github.com/ValentinKolb/dBytes/lib/serde"
)

// TokenKind identifies a token in the stream
type TokenKind uint8

const (
	TString TokenKind = iota + 1
	TBorrowedString
	TBytes
	TBorrowedBytes
	TSeq
	TNone
	TSome
	TUnit
)

func (k TokenKind) String() string {
	switch k {
	case TString:
		return "string"
	case TBorrowedString:
		return "borrowed string"
	case TBytes:
		return "bytes"
	case TBorrowedBytes:
		return "borrowed bytes"
	case TSeq:
		return "sequence"
	case TNone:
		return "none"
	case TSome:
		return "some"
	case TUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// Token is a single value (or option marker) in the stream
type Token struct {
	Kind  TokenKind
	Str   string
	Bytes []byte
	Elems []uint64
	Hint  int
}

func (t Token) String() string {
	switch t.Kind {
	case TString, TBorrowedString:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Str)
	case TBytes, TBorrowedBytes:
		return fmt.Sprintf("%s(%x)", t.Kind, t.Bytes)
	case TSeq:
		return fmt.Sprintf("%s(hint=%d, %v)", t.Kind, t.Hint, t.Elems)
	default:
		return t.Kind.String()
	}
}

// Str is an owned string token
func Str(s string) Token { return Token{Kind: TString, Str: s} }

// BorrowedStr is a string token that lends its bytes
func BorrowedStr(s string) Token { return Token{Kind: TBorrowedString, Str: s, Bytes: []byte(s)} }

// Bytes is an owned byte token
func Bytes(b []byte) Token { return Token{Kind: TBytes, Bytes: b} }

// BorrowedBytes is a byte token whose slice is lent to the decoder without copying
func BorrowedBytes(b []byte) Token { return Token{Kind: TBorrowedBytes, Bytes: b} }

// Seq is a sequence of numbers announcing hint elements (negative: no hint)
func Seq(hint int, elems ...uint64) Token { return Token{Kind: TSeq, Hint: hint, Elems: elems} }

// None is the marker for an absent optional value
func None() Token { return Token{Kind: TNone} }

// Some is the marker for a present optional value, followed by the value
func Some() Token { return Token{Kind: TSome} }

// Unit is the empty value. Optional values read it as absent.
func Unit() Token { return Token{Kind: TUnit} }

// --------------------------------------------------------------------------
// Serializer
// --------------------------------------------------------------------------

// Serializer records the tokens written to it
type Serializer struct {
	humanReadable bool
	tokens        []Token
}

// NewSerializer creates a recording serializer
func NewSerializer(humanReadable bool) *Serializer {
	return &Serializer{humanReadable: humanReadable}
}

// Tokens returns the recorded tokens
func (s *Serializer) Tokens() []Token {
	return s.tokens
}

func (s *Serializer) IsHumanReadable() bool {
	return s.humanReadable
}

func (s *Serializer) SerializeString(v string) error {
	s.tokens = append(s.tokens, Str(v))
	return nil
}

func (s *Serializer) SerializeBytes(v []byte) error {
	s.tokens = append(s.tokens, Bytes(v))
	return nil
}

func (s *Serializer) SerializeNone() error {
	s.tokens = append(s.tokens, None())
	return nil
}

func (s *Serializer) SerializeSome(v serde.Marshaler) error {
	s.tokens = append(s.tokens, Some())
	return v.MarshalSerde(s)
}

// --------------------------------------------------------------------------
// Deserializer
// --------------------------------------------------------------------------

// Deserializer replays a token stream. Unlike real formats it may be used for
// several values in a row, Remaining reports how many tokens were not consumed.
type Deserializer struct {
	humanReadable bool
	tokens        []Token
}

// NewDeserializer creates a deserializer that replays tokens
func NewDeserializer(humanReadable bool, tokens ...Token) *Deserializer {
	return &Deserializer{humanReadable: humanReadable, tokens: tokens}
}

// Remaining returns the number of unread tokens
func (d *Deserializer) Remaining() int {
	return len(d.tokens)
}

func (d *Deserializer) IsHumanReadable() bool {
	return d.humanReadable
}

func (d *Deserializer) DeserializeString() (string, error) {
	t, err := d.next("a string", TString, TBorrowedString)
	if err != nil {
		return "", err
	}
	return t.Str, nil
}

func (d *Deserializer) DeserializeBytes() ([]byte, error) {
	t, err := d.next("bytes", TBytes, TBorrowedBytes, TString, TBorrowedString, TSeq)
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case TSeq:
		return serde.CollectBytes(serde.NewSliceSeq(t.Hint, t.Elems...))
	case TString, TBorrowedString:
		return []byte(t.Str), nil
	default:
		return append([]byte{}, t.Bytes...), nil
	}
}

func (d *Deserializer) DeserializeBorrowedBytes() ([]byte, error) {
	if len(d.tokens) > 0 && d.tokens[0].Kind != TBorrowedBytes {
		return nil, serde.Errorf("%w: %s token can not be borrowed", serde.ErrBorrowUnavailable, d.tokens[0].Kind)
	}
	t, err := d.next("borrowed bytes", TBorrowedBytes)
	if err != nil {
		return nil, err
	}
	return t.Bytes, nil
}

func (d *Deserializer) DeserializeArray(dst []byte) error {
	b, err := d.DeserializeBytes()
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return serde.Errorf("%w: expected %d bytes, found %d", serde.ErrInvalidLength, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

func (d *Deserializer) DeserializeOption() (bool, error) {
	t, err := d.next("an optional value", TNone, TUnit, TSome)
	if err != nil {
		return false, err
	}
	return t.Kind == TSome, nil
}

func (d *Deserializer) DeserializeContent() (serde.Content, error) {
	t, err := d.next("a byte-like value", TBorrowedBytes, TBorrowedString, TBytes, TString, TSeq)
	if err != nil {
		return serde.Content{}, err
	}
	switch t.Kind {
	case TBorrowedBytes:
		return serde.Content{Kind: serde.KindBorrowedBytes, Bytes: t.Bytes}, nil
	case TBorrowedString:
		return serde.Content{Kind: serde.KindBorrowedString, Bytes: t.Bytes}, nil
	case TBytes:
		return serde.Content{Kind: serde.KindBytes, Bytes: append([]byte{}, t.Bytes...)}, nil
	case TString:
		return serde.Content{Kind: serde.KindString, String: t.Str}, nil
	default:
		return serde.Content{Kind: serde.KindSeq, Seq: serde.NewSliceSeq(t.Hint, t.Elems...)}, nil
	}
}

// next pops the next token if it has one of the given kinds
func (d *Deserializer) next(expected string, kinds ...TokenKind) (Token, error) {
	if len(d.tokens) == 0 {
		return Token{}, serde.InvalidType(expected, "end of stream")
	}
	t := d.tokens[0]
	for _, k := range kinds {
		if t.Kind == k {
			d.tokens = d.tokens[1:]
			return t, nil
		}
	}
	return Token{}, serde.InvalidType(expected, t.String())
}
