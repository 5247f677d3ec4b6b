package borsh

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field is a single named entry in a schema.
type Field struct {
	Name string
	Type Type
}

// NewField creates a schema field.
func NewField(name string, t Type) Field {
	return Field{Name: name, Type: t}
}

// Schema is an ordered list of fields. The order of the list is the wire order.
//
// Schemas are immutable: every operation that extends a schema returns a new one.
type Schema struct {
	fields []Field
}

// NewSchema builds a schema from a literal field list. A field name repeated
// within the same call replaces the earlier field's type, keeping the earlier
// position.
func NewSchema(fields ...Field) Schema {
	out := make([]Field, 0, len(fields))
	positions := make(map[string]int, len(fields))

	for _, f := range fields {
		if len(f.Name) == 0 {
			panic("borsh: schema field must be named")
		}

		if i, ok := positions[f.Name]; ok {
			out[i].Type = f.Type
			continue
		}

		positions[f.Name] = len(out)
		out = append(out, f)
	}

	return Schema{fields: out}
}

// Compose concatenates schemas in argument order. Unlike NewSchema, a field
// name declared by more than one schema is an error, since a spliced
// substructure must never silently shadow another one.
func Compose(schemas ...Schema) (Schema, error) {
	var size int
	for _, s := range schemas {
		size += len(s.fields)
	}

	out := make([]Field, 0, size)
	seen := make(map[string]struct{}, size)
	for _, s := range schemas {
		for _, f := range s.fields {
			if _, ok := seen[f.Name]; ok {
				return Schema{}, errors.Wrapf(ErrFieldCollision, "field %q declared more than once", f.Name)
			}

			seen[f.Name] = struct{}{}
			out = append(out, f)
		}
	}

	return Schema{fields: out}, nil
}

// MustCompose is Compose for package level schema definitions.
func MustCompose(schemas ...Schema) Schema {
	s, err := Compose(schemas...)
	if err != nil {
		panic(fmt.Sprintf("borsh: %v", err))
	}
	return s
}

// Append returns a new schema with fields added after the existing ones.
func (s Schema) Append(fields ...Field) (Schema, error) {
	return Compose(s, NewSchema(fields...))
}

// Len returns the number of fields.
func (s Schema) Len() int {
	return len(s.fields)
}

// Fields returns a copy of the ordered field list.
func (s Schema) Fields() []Field {
	copied := make([]Field, len(s.fields))
	copy(copied, s.fields)
	return copied
}

// Names returns the field names in wire order.
func (s Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Encode serializes values in schema order. Every field must be present in
// values; an absent option is expressed as a nil value, not a missing key.
func (s Schema) Encode(values Values) ([]byte, error) {
	var dst []byte
	if err := s.encode(&dst, values); err != nil {
		return nil, err
	}
	return dst, nil
}

// Decode deserializes one instance of the schema from the start of b, and
// returns the number of bytes consumed.
func (s Schema) Decode(b []byte) (Values, int, error) {
	var offset int
	values, err := s.decode(b, &offset)
	if err != nil {
		return nil, 0, err
	}
	return values, offset, nil
}

func (s Schema) encode(dst *[]byte, values Values) error {
	for _, f := range s.fields {
		v, ok := values[f.Name]
		if !ok {
			return errors.Wrapf(ErrInvalidVariant, "field %q: missing value", f.Name)
		}

		if err := f.Type.encode(dst, v); err != nil {
			return errors.Wrapf(err, "field %q", f.Name)
		}
	}
	return nil
}

func (s Schema) decode(src []byte, offset *int) (Values, error) {
	values := make(Values, len(s.fields))
	for _, f := range s.fields {
		v, err := f.Type.decode(src, offset)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", f.Name)
		}
		values[f.Name] = v
	}
	return values, nil
}
