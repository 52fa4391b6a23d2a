package bytesx

import (
	"encoding/json"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/serde/cborserde"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"testing"
)

// record uses every owned container as a struct field
type record struct {
	Hex      Bytes[codec.Hex]                  `json:"hex" yaml:"hex"`
	B64      Bytes[codec.Base64]               `json:"b64" yaml:"b64"`
	Arr      Array[codec.Hex, [4]byte]         `json:"arr" yaml:"arr"`
	Opt      Option[Bytes[codec.Hex]]          `json:"opt" yaml:"opt"`
	Missing  Option[Array[codec.Hex, [2]byte]] `json:"missing" yaml:"missing"`
	Cow      Cow[codec.Base64]                 `json:"cow" yaml:"cow"`
	CowBuf   CowBuf[codec.Hex]                 `json:"cow_buf" yaml:"cow_buf"`
	Boxed    Boxed[codec.Hex]                  `json:"boxed" yaml:"boxed"`
	BoxedBuf BoxedBuf[codec.Base64]            `json:"boxed_buf" yaml:"boxed_buf"`
}

func testRecord() record {
	return record{
		Hex:      Bytes[codec.Hex]{1, 2, 3},
		B64:      Bytes[codec.Base64]("ABC"),
		Arr:      NewArray[codec.Hex]([4]byte{0xde, 0xad, 0xbe, 0xef}),
		Opt:      Some(Bytes[codec.Hex]{0xff}),
		Missing:  None[Array[codec.Hex, [2]byte]](),
		Cow:      Owned[codec.Base64]([]byte{0, 1}),
		CowBuf:   Owned[codec.Hex]([]byte{0xca, 0xfe}).Strong(),
		Boxed:    Boxed[codec.Hex]{9},
		BoxedBuf: BoxedBuf[codec.Base64]("hi"),
	}
}

// --------------------------------------------------------------------------
// JSON
// --------------------------------------------------------------------------

func TestJSONRecord(t *testing.T) {
	data, err := json.Marshal(testRecord())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"hex": "010203",
		"b64": "QUJD",
		"arr": "deadbeef",
		"opt": "ff",
		"missing": null,
		"cow": "AAE=",
		"cow_buf": "cafe",
		"boxed": "09",
		"boxed_buf": "aGk="
	}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, testRecord(), out)
}

func TestJSONErrors(t *testing.T) {
	t.Run("malformed hex", func(t *testing.T) {
		var out record
		assert.ErrorIs(t, json.Unmarshal([]byte(`{"hex":"zz"}`), &out), codec.ErrInvalidEncoding)
	})

	t.Run("malformed base64", func(t *testing.T) {
		var out record
		assert.ErrorIs(t, json.Unmarshal([]byte(`{"b64":"QUJ"}`), &out), codec.ErrInvalidEncoding)
	})

	t.Run("array length", func(t *testing.T) {
		var out record
		assert.ErrorIs(t, json.Unmarshal([]byte(`{"arr":"dead"}`), &out), codec.ErrInvalidLength)
	})

	t.Run("null for required bytes", func(t *testing.T) {
		var out record
		assert.Error(t, json.Unmarshal([]byte(`{"hex":null}`), &out))
	})

	t.Run("borrow from text", func(t *testing.T) {
		var ref BytesRef[codec.Hex]
		assert.ErrorIs(t, json.Unmarshal([]byte(`"0102"`), &ref), codec.ErrUnsupportedOperation)

		var arr ArrayRef[codec.Hex, [2]byte]
		assert.ErrorIs(t, json.Unmarshal([]byte(`"0102"`), &arr), codec.ErrUnsupportedOperation)
	})

	t.Run("number array for cow", func(t *testing.T) {
		// arrays of numbers are raw bytes, only hex or base64 text is accepted
		var c Cow[codec.Hex]
		assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &c))
	})
}

func TestJSONRefEncode(t *testing.T) {
	v := [2]byte{1, 2}
	data, err := json.Marshal(struct {
		Ref BytesRef[codec.Base64]       `json:"ref"`
		Arr ArrayRef[codec.Hex, [2]byte] `json:"arr"`
	}{BytesRef[codec.Base64]("ABC"), ArrayRef[codec.Hex, [2]byte]{P: &v}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ref":"QUJD","arr":"0102"}`, string(data))
}

// --------------------------------------------------------------------------
// YAML
// --------------------------------------------------------------------------

func TestJSONByteBuf(t *testing.T) {
	type message struct {
		B ByteBuf[codec.Hex] `json:"b"`
	}

	data, err := json.Marshal(message{B: ByteBuf[codec.Hex]{1, 2, 3}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":"010203"}`, string(data))

	var out message
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, ByteBuf[codec.Hex]{1, 2, 3}, out.B)

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"b":"AQID"}`), &out), codec.ErrInvalidEncoding)
}

func TestJSONPointerFields(t *testing.T) {
	type boxed struct {
		Arr *Array[codec.Hex, [2]byte] `json:"arr" yaml:"arr"`
		Buf *ByteBuf[codec.Base64]     `json:"buf" yaml:"buf"`
		Nil *Bytes[codec.Hex]          `json:"nil" yaml:"nil"`
	}

	arr := NewArray[codec.Hex]([2]byte{0xab, 0xcd})
	buf := ByteBuf[codec.Base64]("ABC")
	in := boxed{Arr: &arr, Buf: &buf}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"arr":"abcd","buf":"QUJD","nil":null}`, string(data))

	var out boxed
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	yml, err := yaml.Marshal(in)
	require.NoError(t, err)
	var fromYAML boxed
	require.NoError(t, yaml.Unmarshal(yml, &fromYAML))
	assert.Equal(t, in, fromYAML)
}

func TestYAMLRecord(t *testing.T) {
	data, err := yaml.Marshal(testRecord())
	require.NoError(t, err)

	var out record
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, testRecord(), out)
}

func TestYAMLPlainScalars(t *testing.T) {
	// unquoted hex digits resolve to integers in YAML but are still read as text
	in := `
hex: 010203
b64: QUJD
arr: DEADBEEF
opt: ff
missing: ~
cow: AAE=
cow_buf: cafe
boxed: "09"
boxed_buf: aGk=
`
	var out record
	require.NoError(t, yaml.Unmarshal([]byte(in), &out))
	assert.Equal(t, testRecord(), out)
}

func TestYAMLErrors(t *testing.T) {
	var out record
	assert.ErrorIs(t, yaml.Unmarshal([]byte("hex: xyz"), &out), codec.ErrInvalidEncoding)
	assert.ErrorIs(t, yaml.Unmarshal([]byte("arr: '0102'"), &out), codec.ErrInvalidLength)
	assert.Error(t, yaml.Unmarshal([]byte("hex: [1, 2]"), &out))

	var ref BytesRef[codec.Hex]
	assert.ErrorIs(t, yaml.Unmarshal([]byte("'0102'"), &ref), codec.ErrUnsupportedOperation)
}

// --------------------------------------------------------------------------
// CBOR
// --------------------------------------------------------------------------

func TestCBORRecord(t *testing.T) {
	data, err := cbor.Marshal(testRecord())
	require.NoError(t, err)

	var out record
	require.NoError(t, cbor.Unmarshal(data, &out))

	expected := testRecord()
	assert.Equal(t, expected.Hex, out.Hex)
	assert.Equal(t, expected.B64, out.B64)
	assert.Equal(t, expected.Arr, out.Arr)
	assert.Equal(t, expected.Opt, out.Opt)
	assert.Equal(t, expected.Missing, out.Missing)
	assert.Equal(t, expected.Cow.Bytes(), out.Cow.Bytes())
	assert.Equal(t, expected.CowBuf.Buf(), out.CowBuf.Buf())
	assert.Equal(t, expected.Boxed, out.Boxed)
	assert.Equal(t, expected.BoxedBuf, out.BoxedBuf)
}

func TestCBORByteBuf(t *testing.T) {
	data, err := cbor.Marshal(ByteBuf[codec.Base64]{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x43, 1, 2, 3}, data)

	var out ByteBuf[codec.Base64]
	require.NoError(t, cbor.Unmarshal(data, &out))
	assert.Equal(t, ByteBuf[codec.Base64]{1, 2, 3}, out)

	// text strings carry their UTF-8 bytes
	require.NoError(t, cbor.Unmarshal([]byte{0x63, 'A', 'B', 'C'}, &out))
	assert.Equal(t, ByteBuf[codec.Base64]("ABC"), out)

	var b Bytes[codec.Hex]
	require.NoError(t, cbor.Unmarshal([]byte{0x62, 'h', 'i'}, &b))
	assert.Equal(t, Bytes[codec.Hex]("hi"), b)

	var a Array[codec.Hex, [2]byte]
	require.NoError(t, cbor.Unmarshal([]byte{0x62, 'h', 'i'}, &a))
	assert.Equal(t, [2]byte{'h', 'i'}, a.V)
}

func TestYAMLByteBuf(t *testing.T) {
	type message struct {
		B ByteBuf[codec.Hex] `yaml:"b"`
	}

	data, err := yaml.Marshal(message{B: ByteBuf[codec.Hex]{0xbe, 0xef}})
	require.NoError(t, err)
	assert.Equal(t, "b: beef\n", string(data))

	var out message
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, ByteBuf[codec.Hex]{0xbe, 0xef}, out.B)
}

func TestCBORRawBytes(t *testing.T) {
	// binary formats carry the bytes without any text encoding
	data, err := cbor.Marshal(Bytes[codec.Hex]{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x43, 1, 2, 3}, data)

	data, err = cbor.Marshal(None[Bytes[codec.Hex]]())
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf6}, data)
}

func TestCBORZeroCopy(t *testing.T) {
	t.Run("BytesRef", func(t *testing.T) {
		data := []byte{0x43, 1, 2, 3}
		var ref BytesRef[codec.Hex]
		require.NoError(t, cborserde.Unmarshal(data, &ref))
		require.Equal(t, []byte{1, 2, 3}, []byte(ref))

		data[1] = 42
		assert.Equal(t, byte(42), ref[0])
		assert.Equal(t, len(ref), cap(ref), "appending to a view must not write into the input")
	})

	t.Run("ArrayRef", func(t *testing.T) {
		data := []byte{0x44, 1, 2, 3, 4}
		var arr ArrayRef[codec.Hex, [4]byte]
		require.NoError(t, cborserde.Unmarshal(data, &arr))
		require.Equal(t, [4]byte{1, 2, 3, 4}, *arr.P)

		data[4] = 42
		assert.Equal(t, byte(42), arr.P[3])
	})

	t.Run("Cow from byte string", func(t *testing.T) {
		data := []byte{0x42, 1, 2}
		var c Cow[codec.Hex]
		require.NoError(t, cborserde.Unmarshal(data, &c))
		assert.True(t, c.IsBorrowed())

		data[2] = 42
		assert.Equal(t, []byte{1, 42}, c.Bytes())
	})

	t.Run("Cow from text string", func(t *testing.T) {
		data, err := cbor.Marshal("abc")
		require.NoError(t, err)

		var c Cow[codec.Hex]
		require.NoError(t, cborserde.Unmarshal(data, &c))
		assert.True(t, c.IsBorrowed())
		assert.Equal(t, []byte("abc"), c.Bytes())
	})

	t.Run("ArrayRef of named bytes", func(t *testing.T) {
		data := []byte{0x42, 1, 2}
		var arr ArrayRef[codec.Hex, [2]octet]
		require.NoError(t, cborserde.Unmarshal(data, &arr))
		require.Equal(t, [2]octet{1, 2}, *arr.P)

		data[1] = 42
		assert.Equal(t, octet(42), arr.P[0])
	})

	t.Run("Option of BytesRef", func(t *testing.T) {
		data := []byte{0x41, 7}
		var o Option[BytesRef[codec.Hex]]
		require.NoError(t, cborserde.Unmarshal(data, &o))
		require.True(t, o.Valid)

		data[1] = 8
		assert.Equal(t, byte(8), o.V[0])
	})
}

func TestCBORChunkedStrings(t *testing.T) {
	// indefinite-length byte string with the chunks 0102 and 03
	data := []byte{0x5f, 0x42, 1, 2, 0x41, 3, 0xff}

	var c Cow[codec.Hex]
	require.NoError(t, cborserde.Unmarshal(data, &c))
	assert.False(t, c.IsBorrowed())
	assert.Equal(t, []byte{1, 2, 3}, c.Bytes())

	var b Bytes[codec.Hex]
	require.NoError(t, cborserde.Unmarshal(data, &b))
	assert.Equal(t, []byte{1, 2, 3}, []byte(b))

	var a Array[codec.Hex, [3]byte]
	require.NoError(t, cborserde.Unmarshal(data, &a))
	assert.Equal(t, [3]byte{1, 2, 3}, a.V)

	var ref BytesRef[codec.Hex]
	assert.ErrorIs(t, cborserde.Unmarshal(data, &ref), codec.ErrUnsupportedOperation)
}

func TestCBORSequences(t *testing.T) {
	data, err := cbor.Marshal([]uint{1, 2, 3})
	require.NoError(t, err)

	var c Cow[codec.Hex]
	require.NoError(t, cborserde.Unmarshal(data, &c))
	assert.False(t, c.IsBorrowed())
	assert.Equal(t, []byte{1, 2, 3}, c.Bytes())

	var a Array[codec.Hex, [3]byte]
	require.NoError(t, cborserde.Unmarshal(data, &a))
	assert.Equal(t, [3]byte{1, 2, 3}, a.V)

	var short Array[codec.Hex, [2]byte]
	assert.ErrorIs(t, cborserde.Unmarshal(data, &short), codec.ErrInvalidLength)

	// [1, 256]
	data = []byte{0x82, 0x01, 0x19, 0x01, 0x00}
	assert.ErrorIs(t, cborserde.Unmarshal(data, &c), codec.ErrInvalidEncoding)
}

func TestCBORErrors(t *testing.T) {
	var arr ArrayRef[codec.Hex, [4]byte]
	assert.ErrorIs(t, cborserde.Unmarshal([]byte{0x43, 1, 2, 3}, &arr), codec.ErrInvalidLength)

	var a Array[codec.Hex, [4]byte]
	assert.ErrorIs(t, cborserde.Unmarshal([]byte{0x43, 1, 2, 3}, &a), codec.ErrInvalidLength)

	var o Option[Bytes[codec.Hex]]
	require.NoError(t, cborserde.Unmarshal([]byte{0xf7}, &o))
	assert.False(t, o.Valid)

	var b Bytes[codec.Hex]
	assert.Error(t, cborserde.Unmarshal([]byte{0x43, 1}, &b), "truncated input")
	assert.Error(t, cborserde.Unmarshal([]byte{0x01}, &b), "integer is not bytes")
}
