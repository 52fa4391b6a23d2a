package jsonserde

import (
	"github.com/ValentinKolb/dBytes/lib/serde"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type marshalFunc func(s serde.Serializer) error

func (f marshalFunc) MarshalSerde(s serde.Serializer) error { return f(s) }

type unmarshalFunc func(d serde.Deserializer) error

func (f unmarshalFunc) UnmarshalSerde(d serde.Deserializer) error { return f(d) }

func TestMarshal(t *testing.T) {
	tests := []struct {
		name     string
		m        marshalFunc
		expected string
	}{
		{"string", func(s serde.Serializer) error { return s.SerializeString(`a"b`) }, `"a\"b"`},
		{"bytes", func(s serde.Serializer) error { return s.SerializeBytes([]byte{1, 2, 255}) }, `[1,2,255]`},
		{"empty bytes", func(s serde.Serializer) error { return s.SerializeBytes(nil) }, `[]`},
		{"none", func(s serde.Serializer) error { return s.SerializeNone() }, `null`},
		{"some", func(s serde.Serializer) error {
			return s.SerializeSome(marshalFunc(func(s serde.Serializer) error { return s.SerializeString("x") }))
		}, `"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}

	t.Run("no value", func(t *testing.T) {
		_, err := Marshal(marshalFunc(func(s serde.Serializer) error { return nil }))
		assert.Error(t, err)
	})
}

func TestHumanReadable(t *testing.T) {
	require.NoError(t, Unmarshal([]byte(`null`), unmarshalFunc(func(d serde.Deserializer) error {
		assert.True(t, d.IsHumanReadable())
		return nil
	})))
	_, err := Marshal(marshalFunc(func(s serde.Serializer) error {
		assert.True(t, s.IsHumanReadable())
		return s.SerializeNone()
	}))
	require.NoError(t, err)
}

func TestDeserializeString(t *testing.T) {
	var out string
	read := unmarshalFunc(func(d serde.Deserializer) (err error) {
		out, err = d.DeserializeString()
		return err
	})

	require.NoError(t, Unmarshal([]byte(" \"h\\u00e9llo\"\n"), read))
	assert.Equal(t, "héllo", out)

	assert.ErrorIs(t, Unmarshal([]byte(`12`), read), serde.ErrInvalidType)
	assert.ErrorIs(t, Unmarshal([]byte(`null`), read), serde.ErrInvalidType)
	assert.Error(t, Unmarshal([]byte(`"unterminated`), read))
}

func TestDeserializeBytes(t *testing.T) {
	var out []byte
	read := unmarshalFunc(func(d serde.Deserializer) (err error) {
		out, err = d.DeserializeBytes()
		return err
	})

	require.NoError(t, Unmarshal([]byte(`[1, 2, 255]`), read))
	assert.Equal(t, []byte{1, 2, 255}, out)

	require.NoError(t, Unmarshal([]byte(`[]`), read))
	assert.Empty(t, out)

	for _, in := range []string{`[256]`, `[-1]`, `[1.5]`} {
		assert.ErrorIs(t, Unmarshal([]byte(in), read), serde.ErrInvalidValue, in)
	}
	assert.ErrorIs(t, Unmarshal([]byte(`"AQID"`), read), serde.ErrInvalidType)
}

func TestDeserializeBorrowedBytes(t *testing.T) {
	err := Unmarshal([]byte(`[1]`), unmarshalFunc(func(d serde.Deserializer) error {
		_, err := d.DeserializeBorrowedBytes()
		return err
	}))
	assert.ErrorIs(t, err, serde.ErrBorrowUnavailable)
}

func TestDeserializeArray(t *testing.T) {
	dst := make([]byte, 3)
	read := unmarshalFunc(func(d serde.Deserializer) error { return d.DeserializeArray(dst) })

	require.NoError(t, Unmarshal([]byte(`[4,5,6]`), read))
	assert.Equal(t, []byte{4, 5, 6}, dst)

	assert.ErrorIs(t, Unmarshal([]byte(`[1,2]`), read), serde.ErrInvalidLength)
	assert.Equal(t, []byte{4, 5, 6}, dst)
}

func TestDeserializeOption(t *testing.T) {
	var present bool
	read := unmarshalFunc(func(d serde.Deserializer) (err error) {
		present, err = d.DeserializeOption()
		return err
	})

	require.NoError(t, Unmarshal([]byte(`null`), read))
	assert.False(t, present)
	require.NoError(t, Unmarshal([]byte(` "x" `), read))
	assert.True(t, present)
}

func TestDeserializeContent(t *testing.T) {
	var content serde.Content
	read := unmarshalFunc(func(d serde.Deserializer) (err error) {
		content, err = d.DeserializeContent()
		return err
	})

	require.NoError(t, Unmarshal([]byte(`"abc"`), read))
	assert.Equal(t, serde.KindString, content.Kind)
	assert.Equal(t, "abc", content.String)

	require.NoError(t, Unmarshal([]byte(`[1,2]`), read))
	require.Equal(t, serde.KindSeq, content.Kind)
	hint, ok := content.Seq.SizeHint()
	assert.True(t, ok)
	assert.Equal(t, 2, hint)
	b, err := serde.CollectBytes(content.Seq)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	assert.ErrorIs(t, Unmarshal([]byte(`{}`), read), serde.ErrInvalidType)
	assert.ErrorIs(t, Unmarshal([]byte(`true`), read), serde.ErrInvalidType)
}
