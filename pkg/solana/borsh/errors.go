package borsh

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedField indicates the bytes being decoded do not match the
	// expected field layout, or an identifier is not a valid 32 byte key.
	ErrMalformedField = errors.New("malformed field")

	// ErrInvalidVariant indicates a value being encoded is outside the legal
	// domain of its field kind.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrFieldCollision indicates two composed schemas declare the same field.
	ErrFieldCollision = errors.New("field collision")
)

func malformed(kind Kind, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedField, "%s: %s", kind, fmt.Sprintf(format, args...))
}

func invalid(kind Kind, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidVariant, "%s: %s", kind, fmt.Sprintf(format, args...))
}

func unexpectedType(kind Kind, v interface{}) error {
	return invalid(kind, "unexpected value type %T", v)
}
