// Package auction builds instructions for the Metaplex auction program.
package auction

import (
	"github.com/pkg/errors"

	"github.com/code-payments/metaplex-client/pkg/solana"
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

var (
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrAuctionNameTooLong     = errors.Errorf("auction name exceeds %d bytes", AuctionNameLength)
)

var (
	PROGRAM_ADDRESS = solana.MustPublicKeyFromBase58("auctxRXPeJoc4817jDhf4HbjnC4h9k5MRUNsA6ZaPgS")
	PROGRAM_ID      = PROGRAM_ADDRESS
)

var (
	SYSTEM_PROGRAM_ID  = solana.SystemProgramKey
	SYSVAR_RENT_PUBKEY = solana.RentSysVarKey
)

// instructionHeader is the leading discriminant shared by every payload.
var instructionHeader = borsh.NewSchema(
	borsh.NewField(borsh.InstructionField, borsh.U8()),
)
