package borsh

import (
	"github.com/pkg/errors"
)

// InstructionField is the conventional name of a payload's leading discriminant.
const InstructionField = "instruction"

// Record is a typed argument value bound to a single schema.
type Record interface {
	// Schema returns the fully composed schema the record encodes with. The
	// same schema is returned for every value of the record type.
	Schema() Schema

	// Values returns the record's field values keyed by schema field name.
	Values() Values
}

// Serialize encodes a record by walking its schema in order.
func Serialize(r Record) ([]byte, error) {
	return r.Schema().Encode(r.Values())
}

// Deserialize decodes exactly one instance of schema from data. Trailing bytes
// are treated as malformed input.
func Deserialize(schema Schema, data []byte) (Values, error) {
	values, n, err := schema.Decode(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, errors.Wrapf(ErrMalformedField, "unexpected %d bytes after decoded data", len(data)-n)
	}
	return values, nil
}

// DeserializeInstruction decodes data with schema and verifies the leading
// instruction discriminant matches expected.
func DeserializeInstruction(schema Schema, expected uint8, data []byte) (Values, error) {
	values, err := Deserialize(schema, data)
	if err != nil {
		return nil, err
	}

	actual, err := values.Uint8(InstructionField)
	if err != nil {
		return nil, err
	}
	if actual != expected {
		return nil, errors.Wrapf(ErrMalformedField, "unexpected instruction %d, want %d", actual, expected)
	}
	return values, nil
}

// OptionalUint8 converts an optional uint8 into its option value.
func OptionalUint8(v *uint8) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// OptionalUint64 converts an optional uint64 into its option value.
func OptionalUint64(v *uint64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// OptionalBytes32 converts an optional 32 byte array into its option value.
func OptionalBytes32(v *[32]byte) interface{} {
	if v == nil {
		return nil
	}
	b := make([]byte, 32)
	copy(b, v[:])
	return b
}

func lookup[T any](values Values, name string) (T, error) {
	var zero T

	raw, ok := values[name]
	if !ok {
		return zero, errors.Wrapf(ErrMalformedField, "field %q: missing", name)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, errors.Wrapf(ErrMalformedField, "field %q: unexpected value type %T", name, raw)
	}
	return v, nil
}

func lookupOptional[T any](values Values, name string) (*T, error) {
	raw, ok := values[name]
	if !ok {
		return nil, errors.Wrapf(ErrMalformedField, "field %q: missing", name)
	}
	if raw == nil {
		return nil, nil
	}
	v, ok := raw.(T)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedField, "field %q: unexpected value type %T", name, raw)
	}
	return &v, nil
}

func (v Values) Uint8(name string) (uint8, error)   { return lookup[uint8](v, name) }
func (v Values) Uint16(name string) (uint16, error) { return lookup[uint16](v, name) }
func (v Values) Uint32(name string) (uint32, error) { return lookup[uint32](v, name) }
func (v Values) Uint64(name string) (uint64, error) { return lookup[uint64](v, name) }
func (v Values) Bool(name string) (bool, error)     { return lookup[bool](v, name) }
func (v Values) Text(name string) (string, error)   { return lookup[string](v, name) }
func (v Values) Bytes(name string) ([]byte, error)  { return lookup[[]byte](v, name) }
func (v Values) Enum(name string) (EnumValue, error) {
	return lookup[EnumValue](v, name)
}
func (v Values) Struct(name string) (Values, error) {
	return lookup[Values](v, name)
}

func (v Values) OptionalUint8(name string) (*uint8, error) {
	return lookupOptional[uint8](v, name)
}
func (v Values) OptionalUint64(name string) (*uint64, error) {
	return lookupOptional[uint64](v, name)
}

// OptionalBytes32 reads an option<[32]> field.
func (v Values) OptionalBytes32(name string) (*[32]byte, error) {
	b, err := lookupOptional[[]byte](v, name)
	if err != nil || b == nil {
		return nil, err
	}
	if len(*b) != 32 {
		return nil, errors.Wrapf(ErrMalformedField, "field %q: expected 32 bytes, got %d", name, len(*b))
	}
	var out [32]byte
	copy(out[:], *b)
	return &out, nil
}
