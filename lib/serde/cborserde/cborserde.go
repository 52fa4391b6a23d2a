// Package cborserde binds the serde contract to CBOR (RFC 8949) using
// github.com/fxamacker/cbor/v2. CBOR is a binary format: containers write
// their bytes as CBOR byte strings without any text encoding.
//
// Borrowing: the deserializer works directly on the bytes it was given.
// Definite-length byte and text strings are lent as sub slices of that input,
// so a view stays valid exactly as long as the input buffer. Indefinite-length
// strings are split into chunks on the wire and can only be decoded into new
// memory.
//
// Arrays of unsigned integers are accepted wherever bytes are expected, for
// producers that encode a byte slice as a generic sequence of numbers.
package cborserde

import (
	"bytes"
	"encoding/binary"
	"github.com/ValentinKolb/dBytes/lib/serde"
	"github.com/fxamacker/cbor/v2"
	"math"
	"unicode/utf8"
)

// CBOR major types and simple values (RFC 8949 §3.1, §3.3)
const (
	majorUint   byte = 0
	majorNegInt byte = 1
	majorBytes  byte = 2
	majorText   byte = 3
	majorArray  byte = 4
	majorMap    byte = 5
	majorTag    byte = 6
	infoUint8   byte = 24
	infoUint16  byte = 25
	infoUint32  byte = 26
	infoUint64  byte = 27
	infoIndef   byte = 31
	simpleNull  byte = 0xf6
	simpleUndef byte = 0xf7
	breakCode   byte = 0xff
)

var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// Marshal writes m as a single CBOR data item
func Marshal(m serde.Marshaler) ([]byte, error) {
	s := &serializer{}
	if err := m.MarshalSerde(s); err != nil {
		return nil, err
	}
	if s.buf.Len() == 0 {
		return nil, serde.Custom("cbor: marshaler wrote no value")
	}
	return s.buf.Bytes(), nil
}

// Unmarshal reads the single CBOR data item in data into u. Borrowed results
// alias data.
func Unmarshal(data []byte, u serde.Unmarshaler) error {
	if err := decMode.Wellformed(data); err != nil {
		return serde.Errorf("%w: cbor: %w", serde.ErrInvalidValue, err)
	}
	return u.UnmarshalSerde(&deserializer{data: data})
}

// --------------------------------------------------------------------------
// Serializer
// --------------------------------------------------------------------------

type serializer struct {
	buf bytes.Buffer
}

func (s *serializer) IsHumanReadable() bool {
	return false
}

func (s *serializer) SerializeString(v string) error {
	return s.write(v)
}

func (s *serializer) SerializeBytes(v []byte) error {
	if v == nil {
		// nil slices would be written as CBOR null
		v = []byte{}
	}
	return s.write(v)
}

func (s *serializer) SerializeNone() error {
	s.buf.WriteByte(simpleNull)
	return nil
}

func (s *serializer) SerializeSome(v serde.Marshaler) error {
	return v.MarshalSerde(s)
}

func (s *serializer) write(v any) error {
	b, err := encMode.Marshal(v)
	if err != nil {
		return serde.Errorf("cbor: %w", err)
	}
	s.buf.Write(b)
	return nil
}

// --------------------------------------------------------------------------
// Deserializer
// --------------------------------------------------------------------------

type deserializer struct {
	data []byte
}

func (d *deserializer) IsHumanReadable() bool {
	return false
}

func (d *deserializer) DeserializeString() (string, error) {
	h, err := readHead(d.data)
	if err != nil {
		return "", err
	}
	if h.major != majorText {
		return "", serde.InvalidType("a text string", h.describe())
	}
	var s string
	if err := decMode.Unmarshal(d.data, &s); err != nil {
		return "", serde.Errorf("cbor: %w", err)
	}
	return s, nil
}

func (d *deserializer) DeserializeBytes() ([]byte, error) {
	h, err := readHead(d.data)
	if err != nil {
		return nil, err
	}
	switch h.major {
	case majorBytes:
		return d.ownedBytes()
	case majorText:
		s, err := d.DeserializeString()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case majorArray:
		return serde.CollectBytes(d.seq(h))
	default:
		return nil, serde.InvalidType("a byte string", h.describe())
	}
}

func (d *deserializer) DeserializeBorrowedBytes() ([]byte, error) {
	h, err := readHead(d.data)
	if err != nil {
		return nil, err
	}
	if h.major != majorBytes {
		return nil, serde.InvalidType("a byte string", h.describe())
	}
	if h.indefinite {
		return nil, serde.Errorf("%w: indefinite-length byte strings are not contiguous", serde.ErrBorrowUnavailable)
	}
	return d.payload(h)
}

func (d *deserializer) DeserializeArray(dst []byte) error {
	h, err := readHead(d.data)
	if err != nil {
		return err
	}

	var b []byte
	switch {
	case h.major == majorBytes && !h.indefinite:
		b, err = d.payload(h)
	case h.major == majorBytes:
		b, err = d.ownedBytes()
	case h.major == majorText:
		b, err = d.DeserializeBytes()
	case h.major == majorArray:
		// reject a wrong announced length before reading any element
		if !h.indefinite && h.arg != uint64(len(dst)) {
			return invalidLength(len(dst), h.arg)
		}
		b, err = serde.CollectBytes(d.seq(h))
	default:
		return serde.InvalidType("a byte string", h.describe())
	}
	if err != nil {
		return err
	}

	if len(b) != len(dst) {
		return invalidLength(len(dst), uint64(len(b)))
	}
	copy(dst, b)
	return nil
}

func (d *deserializer) DeserializeOption() (bool, error) {
	if len(d.data) == 0 {
		return false, errShort("optional value")
	}
	return d.data[0] != simpleNull && d.data[0] != simpleUndef, nil
}

func (d *deserializer) DeserializeContent() (serde.Content, error) {
	h, err := readHead(d.data)
	if err != nil {
		return serde.Content{}, err
	}

	switch {
	case h.major == majorBytes && h.indefinite:
		b, err := d.ownedBytes()
		if err != nil {
			return serde.Content{}, err
		}
		return serde.Content{Kind: serde.KindBytes, Bytes: b}, nil

	case h.major == majorBytes:
		b, err := d.payload(h)
		if err != nil {
			return serde.Content{}, err
		}
		return serde.Content{Kind: serde.KindBorrowedBytes, Bytes: b}, nil

	case h.major == majorText && h.indefinite:
		s, err := d.DeserializeString()
		if err != nil {
			return serde.Content{}, err
		}
		return serde.Content{Kind: serde.KindString, String: s}, nil

	case h.major == majorText:
		b, err := d.payload(h)
		if err != nil {
			return serde.Content{}, err
		}
		if !utf8.Valid(b) {
			return serde.Content{}, serde.Errorf("%w: cbor text string is not valid UTF-8", serde.ErrInvalidValue)
		}
		return serde.Content{Kind: serde.KindBorrowedString, Bytes: b}, nil

	case h.major == majorArray:
		return serde.Content{Kind: serde.KindSeq, Seq: d.seq(h)}, nil

	default:
		return serde.Content{}, serde.InvalidType("a byte string, text string or array", h.describe())
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// ownedBytes decodes a (possibly chunked) byte string into new memory
func (d *deserializer) ownedBytes() ([]byte, error) {
	var b []byte
	if err := decMode.Unmarshal(d.data, &b); err != nil {
		return nil, serde.Errorf("cbor: %w", err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// payload returns the content of a definite-length string as a view into the input.
// The capacity is clipped so appending to the view never writes into the input.
func (d *deserializer) payload(h head) ([]byte, error) {
	if h.arg > uint64(len(d.data)-h.size) {
		return nil, errShort("string content")
	}
	end := h.size + int(h.arg)
	return d.data[h.size:end:end], nil
}

func (d *deserializer) seq(h head) *itemSeq {
	hint, ok := 0, false
	if !h.indefinite {
		hint, ok = math.MaxInt, true
		if h.arg < uint64(math.MaxInt) {
			hint = int(h.arg)
		}
	}
	return &itemSeq{
		data:       d.data[h.size:],
		remaining:  h.arg,
		indefinite: h.indefinite,
		hint:       hint,
		hasHint:    ok,
	}
}

func invalidLength(expected int, found uint64) error {
	return serde.Errorf("%w: expected %d bytes, found %d", serde.ErrInvalidLength, expected, found)
}

func errShort(what string) error {
	return serde.Errorf("%w: cbor data too short for %s", serde.ErrInvalidValue, what)
}

// head is the initial byte(s) of a CBOR data item
type head struct {
	major      byte
	arg        uint64
	size       int
	indefinite bool
}

// readHead parses the head of the data item at the start of data
func readHead(data []byte) (head, error) {
	if len(data) == 0 {
		return head{}, errShort("item head")
	}

	h := head{major: data[0] >> 5, size: 1}
	info := data[0] & 0x1f

	switch {
	case info < infoUint8:
		h.arg = uint64(info)
	case info == infoUint8:
		h.size = 2
	case info == infoUint16:
		h.size = 3
	case info == infoUint32:
		h.size = 5
	case info == infoUint64:
		h.size = 9
	case info == infoIndef:
		h.indefinite = true
	default:
		return head{}, serde.Errorf("%w: cbor reserved additional information %d", serde.ErrInvalidValue, info)
	}

	if len(data) < h.size {
		return head{}, errShort("item argument")
	}

	switch h.size {
	case 2:
		h.arg = uint64(data[1])
	case 3:
		h.arg = uint64(binary.BigEndian.Uint16(data[1:3]))
	case 5:
		h.arg = uint64(binary.BigEndian.Uint32(data[1:5]))
	case 9:
		h.arg = binary.BigEndian.Uint64(data[1:9])
	}
	return h, nil
}

// describe names the item type for error messages
func (h head) describe() string {
	switch h.major {
	case majorUint:
		return "an unsigned integer"
	case majorNegInt:
		return "a negative integer"
	case majorBytes:
		return "a byte string"
	case majorText:
		return "a text string"
	case majorArray:
		return "an array"
	case majorMap:
		return "a map"
	case majorTag:
		return "a tagged item"
	default:
		return "a simple value"
	}
}

// itemSeq iterates the elements of a CBOR array that are expected to be unsigned integers
type itemSeq struct {
	data       []byte
	remaining  uint64
	indefinite bool
	hint       int
	hasHint    bool
	index      int
}

func (s *itemSeq) SizeHint() (int, bool) {
	return s.hint, s.hasHint
}

func (s *itemSeq) Next() (uint64, bool, error) {
	if s.indefinite {
		if len(s.data) == 0 {
			return 0, false, errShort("array break")
		}
		if s.data[0] == breakCode {
			return 0, false, nil
		}
	} else if s.remaining == 0 {
		return 0, false, nil
	}

	h, err := readHead(s.data)
	if err != nil {
		return 0, false, err
	}
	if h.major != majorUint || h.indefinite {
		return 0, false, serde.InvalidType("an unsigned integer", h.describe())
	}

	s.data = s.data[h.size:]
	s.remaining--
	s.index++
	return h.arg, true, nil
}
