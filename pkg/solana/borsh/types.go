package borsh

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the wire encoding of a single field.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindBool
	KindFixedBytes
	KindString
	KindPublicKey
	KindOption
	KindEnum
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindBool:
		return "bool"
	case KindFixedBytes:
		return "fixed-bytes"
	case KindString:
		return "string"
	case KindPublicKey:
		return "pubkey"
	case KindOption:
		return "option"
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	}
	return "unknown"
}

// Type describes how one field is laid out on the wire. Types are values and
// are never mutated after construction.
//
// In memory representation by kind:
//
//	u8, u16, u32, u64  uint8, uint16, uint32, uint64
//	bool               bool
//	fixed-bytes[n]     []byte of exactly n bytes
//	string             string (UTF-8)
//	pubkey             string (base58 text of a 32 byte key)
//	option<T>          nil when absent, otherwise T's representation
//	enum               EnumValue
//	struct             Values
type Type struct {
	kind     Kind
	size     int
	elem     *Type
	variants []Variant
	schema   Schema
}

func U8() Type  { return Type{kind: KindU8} }
func U16() Type { return Type{kind: KindU16} }
func U32() Type { return Type{kind: KindU32} }
func U64() Type { return Type{kind: KindU64} }

func Bool() Type { return Type{kind: KindBool} }

// String is a u32 little-endian byte length followed by UTF-8 bytes.
func String() Type { return Type{kind: KindString} }

// PublicKeyString is 32 raw bytes on the wire, carried in memory as base58 text.
func PublicKeyString() Type { return Type{kind: KindPublicKey} }

// FixedBytes is exactly n raw bytes with no length prefix.
func FixedBytes(n int) Type {
	if n < 0 {
		panic(fmt.Sprintf("borsh: negative fixed bytes size %d", n))
	}
	return Type{kind: KindFixedBytes, size: n}
}

// Option is a single presence byte, followed by elem's encoding iff present.
//
// elem may not itself be an option: an absent value is nil in memory, so a
// present-but-empty inner option could not be told apart from an absent outer
// one.
func Option(elem Type) Type {
	if elem.kind == KindOption {
		panic("borsh: option of option is not supported")
	}
	return Type{kind: KindOption, elem: &elem}
}

// Enum is a single discriminant byte selecting one of variants, by position,
// followed by the selected variant's payload (if it has one).
func Enum(variants ...Variant) Type {
	if len(variants) == 0 || len(variants) > math.MaxUint8+1 {
		panic(fmt.Sprintf("borsh: enum must declare between 1 and 256 variants, got %d", len(variants)))
	}

	copied := make([]Variant, len(variants))
	copy(copied, variants)
	return Type{kind: KindEnum, variants: copied}
}

// Struct embeds another schema as the payload of a single field.
func Struct(schema Schema) Type {
	return Type{kind: KindStruct, schema: schema}
}

// Kind returns the wire encoding of the type.
func (t Type) Kind() Kind {
	return t.kind
}

// Size returns the length of a fixed bytes type, and zero otherwise.
func (t Type) Size() int {
	return t.size
}

// Elem returns the wrapped type of an option.
func (t Type) Elem() (Type, bool) {
	if t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// Variants returns the declared enum variants, in discriminant order.
func (t Type) Variants() []Variant {
	copied := make([]Variant, len(t.variants))
	copy(copied, t.variants)
	return copied
}

// Schema returns the embedded schema of a struct type.
func (t Type) Schema() Schema {
	return t.schema
}

func (t Type) String() string {
	switch t.kind {
	case KindFixedBytes:
		return fmt.Sprintf("[%d]", t.size)
	case KindOption:
		elem, _ := t.Elem()
		return fmt.Sprintf("option<%s>", elem)
	case KindEnum:
		variants := t.Variants()
		names := make([]string, len(variants))
		for i, v := range variants {
			names[i] = v.Name
		}
		return fmt.Sprintf("enum{%s}", strings.Join(names, ", "))
	case KindStruct:
		return fmt.Sprintf("struct(%d)", t.schema.Len())
	}
	return t.kind.String()
}

// Variant is a named enum member. A zero Payload means the variant carries
// nothing beyond its discriminant.
type Variant struct {
	Name    string
	Payload Schema
}

// UnitVariant declares a variant with no payload.
func UnitVariant(name string) Variant {
	return Variant{Name: name}
}

// PayloadVariant declares a variant whose discriminant is followed by payload.
func PayloadVariant(name string, payload Schema) Variant {
	return Variant{Name: name, Payload: payload}
}

// EnumValue is the in memory value of an enum field.
type EnumValue struct {
	Variant uint8
	Fields  Values
}

// Values holds field values keyed by name. Iteration order of Values is never
// used for encoding; the schema always determines wire order.
type Values map[string]interface{}
