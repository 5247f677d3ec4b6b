package solana

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// ErrPostHandoffMutation indicates a builder was used after its transaction
// was handed off for signing.
var ErrPostHandoffMutation = errors.New("transaction builder already handed off")

// TransactionBuilder collects instructions for a single atomic transaction.
// Instructions are append only and keep their order into the compiled
// message. Once Handoff is called the builder is sealed.
//
// A TransactionBuilder is not safe for concurrent use.
type TransactionBuilder struct {
	feePayer     ed25519.PublicKey
	instructions []Instruction
	handedOff    bool
}

// NewTransactionBuilder returns an empty builder paid for by feePayer.
func NewTransactionBuilder(feePayer ed25519.PublicKey) *TransactionBuilder {
	return &TransactionBuilder{
		feePayer: append(ed25519.PublicKey(nil), feePayer...),
	}
}

// FeePayer returns the account paying for the transaction.
func (b *TransactionBuilder) FeePayer() ed25519.PublicKey {
	return append(ed25519.PublicKey(nil), b.feePayer...)
}

// Add appends copies of instructions in the order given. Nothing is appended
// if the builder was already handed off.
func (b *TransactionBuilder) Add(instructions ...Instruction) error {
	if b.handedOff {
		return errors.Wrapf(ErrPostHandoffMutation, "cannot add %d instruction(s)", len(instructions))
	}

	for _, i := range instructions {
		b.instructions = append(b.instructions, i.clone())
	}
	return nil
}

// Instructions returns deep copies of the instructions appended so far.
func (b *TransactionBuilder) Instructions() []Instruction {
	instructions := make([]Instruction, len(b.instructions))
	for idx, i := range b.instructions {
		instructions[idx] = i.clone()
	}
	return instructions
}

// Len returns the number of instructions appended so far.
func (b *TransactionBuilder) Len() int {
	return len(b.instructions)
}

// HandedOff reports whether Handoff has been called.
func (b *TransactionBuilder) HandedOff() bool {
	return b.handedOff
}

// Handoff seals the builder and compiles its instructions into an unsigned
// transaction. The caller is responsible for setting the blockhash and
// signing.
func (b *TransactionBuilder) Handoff() (Transaction, error) {
	if b.handedOff {
		return Transaction{}, errors.Wrap(ErrPostHandoffMutation, "transaction already handed off")
	}

	b.handedOff = true
	return NewTransaction(b.feePayer, b.instructions...), nil
}
