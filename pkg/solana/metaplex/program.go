// Package metaplex builds instructions for the Metaplex auction manager
// program.
package metaplex

import (
	"github.com/pkg/errors"

	"github.com/code-payments/metaplex-client/pkg/solana"
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

var (
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrUnexpectedProxyCall    = errors.New("unexpected proxy call")
)

var (
	PROGRAM_ADDRESS = solana.MustPublicKeyFromBase58("p1exdMJcjVao65QdewkaZRUnU6VPSXhus9n2GzWfh98")
	PROGRAM_ID      = PROGRAM_ADDRESS
)

var (
	VAULT_PROGRAM_ID          = solana.MustPublicKeyFromBase58("vau1zxA2LbssAUEF7Gpw91zMM1LvXrvpzJtmZ58rPsn")
	TOKEN_METADATA_PROGRAM_ID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	TOKEN_PROGRAM_ID          = solana.TokenProgramKey
	SYSTEM_PROGRAM_ID         = solana.SystemProgramKey
	SYSVAR_RENT_PUBKEY        = solana.RentSysVarKey
)

var instructionHeader = borsh.NewSchema(
	borsh.NewField(borsh.InstructionField, borsh.U8()),
)
