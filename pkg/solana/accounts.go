package solana

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// ErrIncompleteConditionalGroup indicates only some members of an all or
// nothing account group were supplied.
var ErrIncompleteConditionalGroup = errors.New("incomplete conditional account group")

// ConditionalAccountGroup returns the segment of account metas a paired group
// contributes to an instruction's account list.
//
//   - condition false: no accounts, whatever keys were supplied
//   - no member key set: no accounts
//   - every member key set: all members, in the order given
//   - otherwise: ErrIncompleteConditionalGroup
//
// A key that is set but not 32 bytes long is never treated as supplied and
// fails with ErrIncompleteConditionalGroup.
//
// A partial group is never appended, since receiving programs index accounts
// positionally and an unpaired member would shift every account after it.
func ConditionalAccountGroup(condition bool, members ...AccountMeta) ([]AccountMeta, error) {
	if !condition {
		return nil, nil
	}

	var supplied int
	for i, m := range members {
		switch len(m.PublicKey) {
		case 0:
		case ed25519.PublicKeySize:
			supplied++
		default:
			return nil, errors.Wrapf(ErrIncompleteConditionalGroup, "account %d has invalid key length %d", i, len(m.PublicKey))
		}
	}

	switch supplied {
	case 0:
		return nil, nil
	case len(members):
		segment := make([]AccountMeta, len(members))
		copy(segment, members)
		return segment, nil
	}

	return nil, errors.Wrapf(ErrIncompleteConditionalGroup, "%d of %d accounts supplied", supplied, len(members))
}
