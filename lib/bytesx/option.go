package bytesx

import (
	"github.com/ValentinKolb/dBytes/lib/serde"
)

// Option is a value that may be absent. It works like sql.Null[T]: V is only
// meaningful if Valid is true.
type Option[T serde.Marshaler] struct {
	V     T
	Valid bool
}

// Some returns a present Option holding v
func Some[T serde.Marshaler](v T) Option[T] {
	return Option[T]{V: v, Valid: true}
}

// None returns an absent Option
func None[T serde.Marshaler]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present
func (o Option[T]) Get() (T, bool) {
	return o.V, o.Valid
}

func (o Option[T]) MarshalSerde(s serde.Serializer) error {
	if !o.Valid {
		return s.SerializeNone()
	}
	return s.SerializeSome(o.V)
}

func (o *Option[T]) UnmarshalSerde(d serde.Deserializer) error {
	present, err := d.DeserializeOption()
	if err != nil {
		return err
	}
	*o = Option[T]{}
	if !present {
		return nil
	}

	u, ok := any(&o.V).(serde.Unmarshaler)
	if !ok {
		return serde.Errorf("%T does not implement serde.Unmarshaler", &o.V)
	}
	if err := u.UnmarshalSerde(d); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
