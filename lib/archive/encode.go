package archive

import (
	"github.com/ValentinKolb/dSER/lib/adapter"
	"github.com/cockroachdb/errors"
)

// Encode serializes v into a new byte slice
func Encode(v Describable, opts ...Option) ([]byte, error) {
	var buf []byte
	out := adapter.NewByteOutput(&buf)
	if err := NewSerializer(out, opts...).Serialize(v); err != nil {
		return nil, err
	}
	return out.Data(), nil
}

// Decode deserializes data into v. Input left after v is reported as
// ErrIncomplete.
func Decode(data []byte, v Describable, opts ...Option) error {
	in := adapter.NewInputBuffer(data)
	if err := NewDeserializer(in, opts...).Deserialize(v); err != nil {
		return err
	}
	if in.Remaining() > 0 {
		return errors.Wrapf(ErrIncomplete, "%d of %d bytes unread", in.Remaining(), len(data))
	}
	return nil
}

// EncodeContext serializes v with a fresh Context
func EncodeContext(v ContextDescribable, opts ...Option) ([]byte, error) {
	var buf []byte
	out := adapter.NewByteOutput(&buf)
	if err := NewContextSerializer(out, NewContext(), opts...).Serialize(v); err != nil {
		return nil, err
	}
	return out.Data(), nil
}

// DecodeContext deserializes data into v with a fresh Context
func DecodeContext(data []byte, v ContextDescribable, opts ...Option) error {
	in := adapter.NewInputBuffer(data)
	if err := NewContextDeserializer(in, NewContext(), opts...).Deserialize(v); err != nil {
		return err
	}
	if in.Remaining() > 0 {
		return errors.Wrapf(ErrIncomplete, "%d of %d bytes unread", in.Remaining(), len(data))
	}
	return nil
}
