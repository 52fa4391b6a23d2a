// Package jsonserde binds the serde contract to encoding/json. JSON is a
// human-readable format: containers write their bytes as encoded strings.
// Raw byte values, which containers never produce for JSON, are written as an
// array of numbers so every primitive still round trips.
package jsonserde

import (
	"bytes"
	"encoding/json"
	"github.com/ValentinKolb/dBytes/lib/serde"
	"strconv"
)

var null = []byte("null")

// Marshal writes m as a single JSON value
func Marshal(m serde.Marshaler) ([]byte, error) {
	s := &serializer{}
	if err := m.MarshalSerde(s); err != nil {
		return nil, err
	}
	if s.buf.Len() == 0 {
		return nil, serde.Custom("json: marshaler wrote no value")
	}
	return s.buf.Bytes(), nil
}

// Unmarshal reads the single JSON value in data into u
func Unmarshal(data []byte, u serde.Unmarshaler) error {
	return u.UnmarshalSerde(&deserializer{data: bytes.TrimSpace(data)})
}

// --------------------------------------------------------------------------
// Serializer
// --------------------------------------------------------------------------

type serializer struct {
	buf bytes.Buffer
}

func (s *serializer) IsHumanReadable() bool {
	return true
}

func (s *serializer) SerializeString(v string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.buf.Write(b)
	return nil
}

func (s *serializer) SerializeBytes(v []byte) error {
	s.buf.Grow(2 + 4*len(v))
	s.buf.WriteByte('[')
	var num [3]byte
	for i, b := range v {
		if i > 0 {
			s.buf.WriteByte(',')
		}
		s.buf.Write(strconv.AppendUint(num[:0], uint64(b), 10))
	}
	s.buf.WriteByte(']')
	return nil
}

func (s *serializer) SerializeNone() error {
	s.buf.Write(null)
	return nil
}

func (s *serializer) SerializeSome(v serde.Marshaler) error {
	return v.MarshalSerde(s)
}

// --------------------------------------------------------------------------
// Deserializer
// --------------------------------------------------------------------------

type deserializer struct {
	data []byte
}

func (d *deserializer) IsHumanReadable() bool {
	return true
}

func (d *deserializer) DeserializeString() (string, error) {
	if !d.is('"') {
		return "", serde.InvalidType("a string", d.describe())
	}
	var s string
	if err := json.Unmarshal(d.data, &s); err != nil {
		return "", serde.Errorf("json: %w", err)
	}
	return s, nil
}

func (d *deserializer) DeserializeBytes() ([]byte, error) {
	if !d.is('[') {
		return nil, serde.InvalidType("an array of bytes", d.describe())
	}
	seq, err := d.seq()
	if err != nil {
		return nil, err
	}
	return serde.CollectBytes(seq)
}

func (d *deserializer) DeserializeBorrowedBytes() ([]byte, error) {
	return nil, serde.Errorf("%w: json values are always decoded into new memory", serde.ErrBorrowUnavailable)
}

func (d *deserializer) DeserializeArray(dst []byte) error {
	b, err := d.DeserializeBytes()
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return serde.Errorf("%w: expected an array of %d bytes, found %d", serde.ErrInvalidLength, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

func (d *deserializer) DeserializeOption() (bool, error) {
	return !bytes.Equal(d.data, null), nil
}

func (d *deserializer) DeserializeContent() (serde.Content, error) {
	switch {
	case d.is('"'):
		s, err := d.DeserializeString()
		if err != nil {
			return serde.Content{}, err
		}
		return serde.Content{Kind: serde.KindString, String: s}, nil
	case d.is('['):
		seq, err := d.seq()
		if err != nil {
			return serde.Content{}, err
		}
		return serde.Content{Kind: serde.KindSeq, Seq: seq}, nil
	default:
		return serde.Content{}, serde.InvalidType("a string or an array of bytes", d.describe())
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func (d *deserializer) is(c byte) bool {
	return len(d.data) > 0 && d.data[0] == c
}

func (d *deserializer) seq() (*numberSeq, error) {
	var nums []json.Number
	if err := json.Unmarshal(d.data, &nums); err != nil {
		return nil, serde.Errorf("json: %w", err)
	}
	return &numberSeq{nums: nums}, nil
}

// describe names the JSON type of the input for error messages
func (d *deserializer) describe() string {
	if len(d.data) == 0 {
		return "nothing"
	}
	switch d.data[0] {
	case '"':
		return "a string"
	case '[':
		return "an array"
	case '{':
		return "an object"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	default:
		return "a number"
	}
}

// numberSeq iterates the elements of a JSON array of numbers
type numberSeq struct {
	nums []json.Number
	pos  int
}

func (s *numberSeq) SizeHint() (int, bool) {
	return len(s.nums), true
}

func (s *numberSeq) Next() (uint64, bool, error) {
	if s.pos >= len(s.nums) {
		return 0, false, nil
	}
	n := s.nums[s.pos]
	v, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, false, serde.Errorf("%w: array element %q at index %d is not an unsigned integer", serde.ErrInvalidValue, n, s.pos)
	}
	s.pos++
	return v, true, nil
}
