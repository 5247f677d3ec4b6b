package borsh

import (
	"crypto/ed25519"
	"encoding/binary"
	"unicode/utf8"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	optionNone byte = 0
	optionSome byte = 1
)

// Encode serializes a single value of the type.
func (t Type) Encode(v interface{}) ([]byte, error) {
	var dst []byte
	if err := t.encode(&dst, v); err != nil {
		return nil, err
	}
	return dst, nil
}

// Decode deserializes a single value of the type from the start of b, and
// returns the number of bytes consumed.
func (t Type) Decode(b []byte) (interface{}, int, error) {
	var offset int
	v, err := t.decode(b, &offset)
	if err != nil {
		return nil, 0, err
	}
	return v, offset, nil
}

func (t Type) encode(dst *[]byte, v interface{}) error {
	switch t.kind {
	case KindU8:
		n, ok := v.(uint8)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		putUint8(dst, n)
	case KindU16:
		n, ok := v.(uint16)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		putUint16(dst, n)
	case KindU32:
		n, ok := v.(uint32)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		putUint32(dst, n)
	case KindU64:
		n, ok := v.(uint64)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		putUint64(dst, n)
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		if b {
			putUint8(dst, 1)
		} else {
			putUint8(dst, 0)
		}
	case KindFixedBytes:
		b, ok := v.([]byte)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		if len(b) != t.size {
			return invalid(t.kind, "expected %d bytes, got %d", t.size, len(b))
		}
		*dst = append(*dst, b...)
	case KindString:
		s, ok := v.(string)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		if !utf8.ValidString(s) {
			return invalid(t.kind, "not valid utf-8")
		}
		if uint64(len(s)) > uint64(^uint32(0)) {
			return invalid(t.kind, "length %d exceeds u32", len(s))
		}
		putUint32(dst, uint32(len(s)))
		*dst = append(*dst, s...)
	case KindPublicKey:
		s, ok := v.(string)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		key, err := DecodePublicKey(s)
		if err != nil {
			return err
		}
		*dst = append(*dst, key...)
	case KindOption:
		if v == nil {
			putUint8(dst, optionNone)
			return nil
		}
		putUint8(dst, optionSome)
		return t.elem.encode(dst, v)
	case KindEnum:
		e, ok := v.(EnumValue)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		if int(e.Variant) >= len(t.variants) {
			return invalid(t.kind, "variant %d not declared (%d variants)", e.Variant, len(t.variants))
		}
		putUint8(dst, e.Variant)

		payload := t.variants[e.Variant].Payload
		if payload.Len() == 0 {
			return nil
		}
		if err := payload.encode(dst, e.Fields); err != nil {
			return errors.Wrapf(err, "variant %q", t.variants[e.Variant].Name)
		}
	case KindStruct:
		values, ok := v.(Values)
		if !ok {
			return unexpectedType(t.kind, v)
		}
		return t.schema.encode(dst, values)
	default:
		return invalid(t.kind, "unsupported kind")
	}

	return nil
}

func (t Type) decode(src []byte, offset *int) (interface{}, error) {
	switch t.kind {
	case KindU8:
		var v uint8
		err := getUint8(src, &v, offset)
		return v, err
	case KindU16:
		var v uint16
		err := getUint16(src, &v, offset)
		return v, err
	case KindU32:
		var v uint32
		err := getUint32(src, &v, offset)
		return v, err
	case KindU64:
		var v uint64
		err := getUint64(src, &v, offset)
		return v, err
	case KindBool:
		var v uint8
		if err := getUint8(src, &v, offset); err != nil {
			return nil, err
		}
		switch v {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return nil, malformed(t.kind, "invalid bool byte 0x%02x", v)
	case KindFixedBytes:
		var v []byte
		err := getBytes(src, &v, t.size, offset)
		return v, err
	case KindString:
		var length uint32
		if err := getUint32(src, &length, offset); err != nil {
			return nil, err
		}

		var raw []byte
		if err := getBytes(src, &raw, int(length), offset); err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			return nil, malformed(t.kind, "not valid utf-8")
		}
		return string(raw), nil
	case KindPublicKey:
		var raw []byte
		if err := getBytes(src, &raw, ed25519.PublicKeySize, offset); err != nil {
			return nil, err
		}
		return base58.Encode(raw), nil
	case KindOption:
		var presence uint8
		if err := getUint8(src, &presence, offset); err != nil {
			return nil, err
		}
		switch presence {
		case optionNone:
			return nil, nil
		case optionSome:
			return t.elem.decode(src, offset)
		}
		return nil, malformed(t.kind, "invalid presence byte 0x%02x", presence)
	case KindEnum:
		var discriminant uint8
		if err := getUint8(src, &discriminant, offset); err != nil {
			return nil, err
		}
		if int(discriminant) >= len(t.variants) {
			return nil, malformed(t.kind, "unknown discriminant %d (%d variants)", discriminant, len(t.variants))
		}

		e := EnumValue{Variant: discriminant}
		payload := t.variants[discriminant].Payload
		if payload.Len() > 0 {
			fields, err := payload.decode(src, offset)
			if err != nil {
				return nil, errors.Wrapf(err, "variant %q", t.variants[discriminant].Name)
			}
			e.Fields = fields
		}
		return e, nil
	case KindStruct:
		return t.schema.decode(src, offset)
	}

	return nil, malformed(t.kind, "unsupported kind")
}

// DecodePublicKey converts base58 text into a 32 byte key. Text that does not
// decode to exactly 32 bytes, or is not the canonical rendering of the key it
// decodes to, is rejected with ErrMalformedField.
func DecodePublicKey(s string) (ed25519.PublicKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, malformed(KindPublicKey, "invalid base58 %q", s)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, malformed(KindPublicKey, "%q decodes to %d bytes, want %d", s, len(raw), ed25519.PublicKeySize)
	}
	if base58.Encode(raw) != s {
		return nil, malformed(KindPublicKey, "%q is not canonical base58", s)
	}
	return raw, nil
}

// EncodePublicKey renders a 32 byte key as base58 text.
func EncodePublicKey(key ed25519.PublicKey) (string, error) {
	if len(key) != ed25519.PublicKeySize {
		return "", invalid(KindPublicKey, "key is %d bytes, want %d", len(key), ed25519.PublicKeySize)
	}
	return base58.Encode(key), nil
}

func putUint8(dst *[]byte, v uint8) {
	*dst = append(*dst, v)
}

func putUint16(dst *[]byte, v uint16) {
	*dst = binary.LittleEndian.AppendUint16(*dst, v)
}

func putUint32(dst *[]byte, v uint32) {
	*dst = binary.LittleEndian.AppendUint32(*dst, v)
}

func putUint64(dst *[]byte, v uint64) {
	*dst = binary.LittleEndian.AppendUint64(*dst, v)
}

func remaining(src []byte, offset *int, kind Kind, n int) error {
	if n < 0 || len(src)-*offset < n {
		return malformed(kind, "need %d bytes at offset %d, have %d", n, *offset, len(src)-*offset)
	}
	return nil
}

func getUint8(src []byte, dst *uint8, offset *int) error {
	if err := remaining(src, offset, KindU8, 1); err != nil {
		return err
	}
	*dst = src[*offset]
	*offset += 1
	return nil
}

func getUint16(src []byte, dst *uint16, offset *int) error {
	if err := remaining(src, offset, KindU16, 2); err != nil {
		return err
	}
	*dst = binary.LittleEndian.Uint16(src[*offset:])
	*offset += 2
	return nil
}

func getUint32(src []byte, dst *uint32, offset *int) error {
	if err := remaining(src, offset, KindU32, 4); err != nil {
		return err
	}
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
	return nil
}

func getUint64(src []byte, dst *uint64, offset *int) error {
	if err := remaining(src, offset, KindU64, 8); err != nil {
		return err
	}
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
	return nil
}

func getBytes(src []byte, dst *[]byte, length int, offset *int) error {
	if err := remaining(src, offset, KindFixedBytes, length); err != nil {
		return err
	}
	*dst = make([]byte, length)
	copy(*dst, src[*offset:*offset+length])
	*offset += length
	return nil
}
