// Package shortvec implements the compact-u16 length prefix used by the
// Solana message format.
package shortvec

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// maxEncodedLen is the number of bytes needed for math.MaxUint16.
const maxEncodedLen = 3

var ErrLengthOverflow = errors.New("shortvec length exceeds max uint16")

// EncodeLen writes length as a compact-u16: seven bits per byte, least
// significant group first, with the high bit set on every byte but the last.
func EncodeLen(w io.Writer, length int) (n int, err error) {
	if length < 0 || length > math.MaxUint16 {
		return 0, errors.Wrapf(ErrLengthOverflow, "len=%d", length)
	}

	var buf [maxEncodedLen]byte
	for {
		buf[n] = byte(length & 0x7f)
		length >>= 7
		if length == 0 {
			n++
			break
		}

		buf[n] |= 0x80
		n++
	}

	return w.Write(buf[:n])
}

// DecodeLen reads a compact-u16 length from r.
func DecodeLen(r io.Reader) (int, error) {
	var val int
	var b [1]byte

	for i := 0; ; i++ {
		if i == maxEncodedLen {
			return 0, errors.Errorf("invalid size: more than %d bytes", maxEncodedLen)
		}

		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}

		val |= int(b[0]&0x7f) << (i * 7)
		if b[0]&0x80 == 0 {
			break
		}
	}

	if val > math.MaxUint16 {
		return 0, errors.Wrapf(ErrLengthOverflow, "len=%d", val)
	}

	return val, nil
}
