package solana

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

// SignAndSubmit hands off the builder, signs the compiled transaction over a
// fresh blockhash, and submits it. The fee payer's key must be among signers.
//
// The builder is sealed even when a later step fails.
func SignAndSubmit(c Client, b *TransactionBuilder, commitment Commitment, signers ...ed25519.PrivateKey) (Transaction, Signature, error) {
	txn, err := b.Handoff()
	if err != nil {
		return txn, Signature{}, err
	}

	bh, err := c.GetLatestBlockhash()
	if err != nil {
		return txn, Signature{}, errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(bh)

	if err := txn.Sign(signers...); err != nil {
		return txn, Signature{}, errors.Wrap(err, "failed to sign transaction")
	}

	sig, err := c.SubmitTransaction(txn, commitment)
	if err != nil {
		return txn, sig, err
	}

	return txn, sig, nil
}
