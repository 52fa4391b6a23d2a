package bytesx

import (
	"errors"
	"github.com/ValentinKolb/dBytes/lib/codec"
	"github.com/ValentinKolb/dBytes/lib/serde"
	"reflect"
)

// ErrNotByteArray is returned if an Array or ArrayRef is instantiated with a type that is not an [N]byte array
var ErrNotByteArray = errors.New("not a byte array")

// Array is a fixed-length byte array. A must be an array type with byte
// elements (e.g. [32]byte or a named type based on it), N is taken from A.
type Array[C codec.TextCodec, A any] struct {
	V A
}

// NewArray wraps v
func NewArray[C codec.TextCodec, A any](v A) Array[C, A] {
	return Array[C, A]{V: v}
}

// Len returns the number of bytes of the array
func (a Array[C, A]) Len() int {
	return arrayLen(reflect.TypeFor[A]())
}

func (a Array[C, A]) MarshalSerde(s serde.Serializer) error {
	b, err := byteView(&a.V)
	if err != nil {
		return err
	}
	return codec.Serialize[C](s, b)
}

func (a *Array[C, A]) UnmarshalSerde(d serde.Deserializer) error {
	b, err := byteView(&a.V)
	if err != nil {
		return err
	}
	return codec.DeserializeInto[C](d, b)
}

// ArrayRef points to a fixed-length byte array inside the input it was decoded from
type ArrayRef[C codec.TextCodec, A any] struct {
	P *A
}

func (a ArrayRef[C, A]) MarshalSerde(s serde.Serializer) error {
	if a.P == nil {
		return serde.Custom("ArrayRef does not point to an array")
	}
	b, err := byteView(a.P)
	if err != nil {
		return err
	}
	return codec.Serialize[C](s, b)
}

func (a *ArrayRef[C, A]) UnmarshalSerde(d serde.Deserializer) error {
	t := reflect.TypeFor[A]()
	n := arrayLen(t)
	if n < 0 {
		return serde.Errorf("%w: %s", ErrNotByteArray, t)
	}

	b, err := borrow(d, "ArrayRef")
	if err != nil {
		return err
	}
	if len(b) != n {
		return serde.Errorf("%w: expected %d bytes, found %d", codec.ErrInvalidLength, n, len(b))
	}

	if n == 0 {
		a.P = new(A)
		return nil
	}
	// the element type may be a named byte type, so the pointer is built
	// from the address of the first element instead of a slice conversion
	a.P = reflect.NewAt(t, reflect.ValueOf(b).UnsafePointer()).Interface().(*A)
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// arrayLen returns the length of a byte array type or -1 for any other type
func arrayLen(t reflect.Type) int {
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		return -1
	}
	return t.Len()
}

// byteView returns a slice sharing memory with the array p points to
func byteView[A any](p *A) ([]byte, error) {
	v := reflect.ValueOf(p).Elem()
	if arrayLen(v.Type()) < 0 {
		return nil, serde.Errorf("%w: %s", ErrNotByteArray, v.Type())
	}
	return v.Slice(0, v.Len()).Bytes(), nil
}
