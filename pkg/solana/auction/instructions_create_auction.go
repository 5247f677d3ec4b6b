package auction

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/metaplex-client/pkg/solana"
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

// createAuctionBody is every CreateAuction field after the discriminant.
// CreateAuctionV2 extends it.
var createAuctionBody = borsh.NewSchema(
	borsh.NewField("winners", borsh.Struct(winnerLimitSchema)),
	borsh.NewField("endAuctionAt", borsh.Option(borsh.U64())),
	borsh.NewField("auctionGap", borsh.Option(borsh.U64())),
	borsh.NewField("tokenMint", borsh.PublicKeyString()),
	borsh.NewField("authority", borsh.PublicKeyString()),
	borsh.NewField("resource", borsh.PublicKeyString()),
	borsh.NewField("priceFloor", borsh.Struct(priceFloorSchema)),
	borsh.NewField("tickSize", borsh.Option(borsh.U64())),
	borsh.NewField("gapTickSizePercentage", borsh.Option(borsh.U8())),
)

var createAuctionSchema = borsh.MustCompose(instructionHeader, createAuctionBody)

// CreateAuctionInstructionArgs are the arguments of CreateAuction. Account
// fields hold base58 text.
type CreateAuctionInstructionArgs struct {
	// How many winners are allowed.
	Winners WinnerLimit
	// Unix timestamp after which no more bids are accepted.
	EndAuctionAt *uint64
	// Seconds after the last bid before the auction ends.
	AuctionGap *uint64
	// Mint of the SPL token bids are placed in.
	TokenMint string
	Authority string
	// The resource being auctioned, usually a vault.
	Resource              string
	PriceFloor            PriceFloor
	TickSize              *uint64
	GapTickSizePercentage *uint8
}

func (a *CreateAuctionInstructionArgs) Schema() borsh.Schema {
	return createAuctionSchema
}

func (a *CreateAuctionInstructionArgs) Values() borsh.Values {
	values := a.bodyValues()
	values[borsh.InstructionField] = uint8(InstructionTypeCreateAuction)
	return values
}

func (a *CreateAuctionInstructionArgs) bodyValues() borsh.Values {
	return borsh.Values{
		"winners":               a.Winners.Values(),
		"endAuctionAt":          borsh.OptionalUint64(a.EndAuctionAt),
		"auctionGap":            borsh.OptionalUint64(a.AuctionGap),
		"tokenMint":             a.TokenMint,
		"authority":             a.Authority,
		"resource":              a.Resource,
		"priceFloor":            a.PriceFloor.Values(),
		"tickSize":              borsh.OptionalUint64(a.TickSize),
		"gapTickSizePercentage": borsh.OptionalUint8(a.GapTickSizePercentage),
	}
}

func (a *CreateAuctionInstructionArgs) Marshal() ([]byte, error) {
	return borsh.Serialize(a)
}

func (a *CreateAuctionInstructionArgs) Unmarshal(data []byte) error {
	values, err := borsh.DeserializeInstruction(createAuctionSchema, uint8(InstructionTypeCreateAuction), data)
	if err != nil {
		return err
	}
	return a.fromBodyValues(values)
}

func (a *CreateAuctionInstructionArgs) fromBodyValues(values borsh.Values) (err error) {
	var decoded CreateAuctionInstructionArgs

	winners, err := values.Struct("winners")
	if err != nil {
		return err
	}
	if decoded.Winners, err = winnerLimitFromValues(winners); err != nil {
		return errors.Wrap(err, "winners")
	}

	if decoded.EndAuctionAt, err = values.OptionalUint64("endAuctionAt"); err != nil {
		return err
	}
	if decoded.AuctionGap, err = values.OptionalUint64("auctionGap"); err != nil {
		return err
	}
	if decoded.TokenMint, err = values.Text("tokenMint"); err != nil {
		return err
	}
	if decoded.Authority, err = values.Text("authority"); err != nil {
		return err
	}
	if decoded.Resource, err = values.Text("resource"); err != nil {
		return err
	}

	priceFloor, err := values.Struct("priceFloor")
	if err != nil {
		return err
	}
	if decoded.PriceFloor, err = priceFloorFromValues(priceFloor); err != nil {
		return errors.Wrap(err, "priceFloor")
	}

	if decoded.TickSize, err = values.OptionalUint64("tickSize"); err != nil {
		return err
	}
	if decoded.GapTickSizePercentage, err = values.OptionalUint8("gapTickSizePercentage"); err != nil {
		return err
	}

	*a = decoded
	return nil
}

type CreateAuctionInstructionAccounts struct {
	Creator         ed25519.PublicKey
	Auction         ed25519.PublicKey
	AuctionExtended ed25519.PublicKey
}

// NewCreateAuctionInstruction builds a CreateAuction instruction.
//
// Accounts:
//
//	0. [WRITE, SIGNER] Creator, pays for the new accounts
//	1. [WRITE] Auction
//	2. [WRITE] Auction extended
//	3. [] Rent sysvar
//	4. [] System program
func NewCreateAuctionInstruction(
	accounts *CreateAuctionInstructionAccounts,
	args *CreateAuctionInstructionArgs,
) (solana.Instruction, error) {
	data, err := args.Marshal()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode create auction args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		createAuctionAccounts(accounts)...,
	), nil
}

func createAuctionAccounts(accounts *CreateAuctionInstructionAccounts) []solana.AccountMeta {
	return []solana.AccountMeta{
		solana.NewAccountMeta(accounts.Creator, true),
		solana.NewAccountMeta(accounts.Auction, false),
		solana.NewAccountMeta(accounts.AuctionExtended, false),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	}
}

type DecompiledCreateAuction struct {
	CreateAuctionInstructionAccounts
	Args CreateAuctionInstructionArgs
}

// DecompileCreateAuction extracts a CreateAuction instruction from a compiled
// message.
func DecompileCreateAuction(m solana.Message, index int) (*DecompiledCreateAuction, error) {
	i, err := compiledInstruction(m, index, InstructionTypeCreateAuction)
	if err != nil {
		return nil, err
	}

	var v DecompiledCreateAuction
	if err := v.Args.Unmarshal(i.Data); err != nil {
		return nil, errors.Wrap(err, "invalid create auction args")
	}
	v.CreateAuctionInstructionAccounts = decompileCreateAuctionAccounts(m, i)
	return &v, nil
}

func decompileCreateAuctionAccounts(m solana.Message, i solana.CompiledInstruction) CreateAuctionInstructionAccounts {
	return CreateAuctionInstructionAccounts{
		Creator:         m.Accounts[i.Accounts[0]],
		Auction:         m.Accounts[i.Accounts[1]],
		AuctionExtended: m.Accounts[i.Accounts[2]],
	}
}

// compiledInstruction returns the instruction at index after checking it
// targets this program with the expected discriminant and account count.
func compiledInstruction(m solana.Message, index int, expected InstructionType) (solana.CompiledInstruction, error) {
	if index < 0 || index >= len(m.Instructions) {
		return solana.CompiledInstruction{}, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]
	if !bytes.Equal(m.Accounts[i.ProgramIndex], PROGRAM_ID) {
		return i, solana.ErrIncorrectProgram
	}
	if len(i.Data) == 0 || i.Data[0] != uint8(expected) {
		return i, solana.ErrIncorrectInstruction
	}
	if len(i.Accounts) != 5 {
		return i, errors.Wrapf(ErrInvalidInstructionData, "invalid number of accounts: %d", len(i.Accounts))
	}
	return i, nil
}
