package auction

import (
	"github.com/pkg/errors"

	"github.com/code-payments/metaplex-client/pkg/solana"
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

// AuctionNameLength is the fixed on chain size of an auction name.
const AuctionNameLength = 32

var createAuctionV2Extras = borsh.NewSchema(
	borsh.NewField("instantSalePrice", borsh.Option(borsh.U64())),
	borsh.NewField("name", borsh.Option(borsh.FixedBytes(AuctionNameLength))),
)

var createAuctionV2Schema = borsh.MustCompose(instructionHeader, createAuctionBody, createAuctionV2Extras)

// ToAuctionName zero pads name into the fixed size name field.
func ToAuctionName(name string) ([AuctionNameLength]byte, error) {
	var out [AuctionNameLength]byte
	if len(name) > AuctionNameLength {
		return out, errors.Wrapf(ErrAuctionNameTooLong, "len=%d", len(name))
	}
	copy(out[:], name)
	return out, nil
}

// CreateAuctionV2InstructionArgs extends CreateAuction with an instant sale
// price and a name.
type CreateAuctionV2InstructionArgs struct {
	CreateAuctionInstructionArgs

	InstantSalePrice *uint64
	Name             *[AuctionNameLength]byte
}

func (a *CreateAuctionV2InstructionArgs) Schema() borsh.Schema {
	return createAuctionV2Schema
}

func (a *CreateAuctionV2InstructionArgs) Values() borsh.Values {
	values := a.bodyValues()
	values[borsh.InstructionField] = uint8(InstructionTypeCreateAuctionV2)
	values["instantSalePrice"] = borsh.OptionalUint64(a.InstantSalePrice)
	values["name"] = borsh.OptionalBytes32(a.Name)
	return values
}

func (a *CreateAuctionV2InstructionArgs) Marshal() ([]byte, error) {
	return borsh.Serialize(a)
}

func (a *CreateAuctionV2InstructionArgs) Unmarshal(data []byte) error {
	values, err := borsh.DeserializeInstruction(createAuctionV2Schema, uint8(InstructionTypeCreateAuctionV2), data)
	if err != nil {
		return err
	}

	var decoded CreateAuctionV2InstructionArgs
	if err := decoded.fromBodyValues(values); err != nil {
		return err
	}
	if decoded.InstantSalePrice, err = values.OptionalUint64("instantSalePrice"); err != nil {
		return err
	}
	if decoded.Name, err = values.OptionalBytes32("name"); err != nil {
		return err
	}

	*a = decoded
	return nil
}

// NewCreateAuctionV2Instruction builds a CreateAuctionV2 instruction. It takes
// the same accounts as CreateAuction.
func NewCreateAuctionV2Instruction(
	accounts *CreateAuctionInstructionAccounts,
	args *CreateAuctionV2InstructionArgs,
) (solana.Instruction, error) {
	data, err := args.Marshal()
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode create auction v2 args")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		createAuctionAccounts(accounts)...,
	), nil
}

type DecompiledCreateAuctionV2 struct {
	CreateAuctionInstructionAccounts
	Args CreateAuctionV2InstructionArgs
}

func DecompileCreateAuctionV2(m solana.Message, index int) (*DecompiledCreateAuctionV2, error) {
	i, err := compiledInstruction(m, index, InstructionTypeCreateAuctionV2)
	if err != nil {
		return nil, err
	}

	var v DecompiledCreateAuctionV2
	if err := v.Args.Unmarshal(i.Data); err != nil {
		return nil, errors.Wrap(err, "invalid create auction v2 args")
	}
	v.CreateAuctionInstructionAccounts = decompileCreateAuctionAccounts(m, i)
	return &v, nil
}

