package metaplex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/metaplex-client/pkg/solana"
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

type RedeemFullRightsTransferBidArgs struct{}

func (a *RedeemFullRightsTransferBidArgs) Schema() borsh.Schema {
	return instructionHeader
}

func (a *RedeemFullRightsTransferBidArgs) Values() borsh.Values {
	return borsh.Values{
		borsh.InstructionField: uint8(InstructionTypeRedeemFullRightsTransferBid),
	}
}

func (a *RedeemFullRightsTransferBidArgs) Marshal() ([]byte, error) {
	return borsh.Serialize(a)
}

func (a *RedeemFullRightsTransferBidArgs) Unmarshal(data []byte) error {
	_, err := borsh.DeserializeInstruction(instructionHeader, uint8(InstructionTypeRedeemFullRightsTransferBid), data)
	return err
}

type RedeemFullRightsTransferBidInstructionAccounts struct {
	RedemptionAccounts

	MasterMetadata       ed25519.PublicKey
	NewMetadataAuthority ed25519.PublicKey
	TransferAuthority    ed25519.PublicKey
	SafetyDepositConfig  ed25519.PublicKey
}

type RedeemFullRightsTransferBidInstructionArgs struct {
	AuctioneerReclaimIndex *uint8
}

// NewRedeemFullRightsTransferBidInstruction builds a
// RedeemFullRightsTransferBid instruction, or its auctioneer proxy when
// args.AuctioneerReclaimIndex is set.
//
// Accounts 0 to 16 are as NewRedeemBidInstruction, followed by:
//
//	17. [WRITE] Master metadata
//	18. [] New metadata authority
//	19. [] Transfer authority
//	20. [] Safety deposit config
func NewRedeemFullRightsTransferBidInstruction(
	accounts *RedeemFullRightsTransferBidInstructionAccounts,
	args *RedeemFullRightsTransferBidInstructionArgs,
) (solana.Instruction, error) {
	data, err := redeemFullRightsTransferBidPayload(args.AuctioneerReclaimIndex)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode redeem full rights transfer bid args")
	}

	metas := append(
		accounts.metas(),
		solana.NewAccountMeta(accounts.MasterMetadata, false),
		solana.NewReadonlyAccountMeta(accounts.NewMetadataAuthority, false),
		solana.NewReadonlyAccountMeta(accounts.TransferAuthority, false),
		solana.NewReadonlyAccountMeta(accounts.SafetyDepositConfig, false),
	)

	return solana.NewInstruction(PROGRAM_ID, data, metas...), nil
}

type DecompiledRedeemFullRightsTransferBid struct {
	RedeemFullRightsTransferBidInstructionAccounts
	Args RedeemFullRightsTransferBidInstructionArgs
}

func DecompileRedeemFullRightsTransferBid(m solana.Message, index int) (*DecompiledRedeemFullRightsTransferBid, error) {
	i, err := compiledInstruction(m, index)
	if err != nil {
		return nil, err
	}

	reclaimIndex, err := decodeRedemptionPayload(i.Data, InstructionTypeRedeemFullRightsTransferBid, ProxyCallRedeemFullRightsTransferBid)
	if err != nil {
		if errors.Is(err, ErrInvalidInstructionData) || errors.Is(err, ErrUnexpectedProxyCall) {
			return nil, solana.ErrIncorrectInstruction
		}
		return nil, errors.Wrap(err, "invalid redeem full rights transfer bid args")
	}

	if len(i.Accounts) != redemptionAccountsLen+4 {
		return nil, errors.Wrapf(ErrInvalidInstructionData, "invalid number of accounts: %d", len(i.Accounts))
	}

	return &DecompiledRedeemFullRightsTransferBid{
		RedeemFullRightsTransferBidInstructionAccounts: RedeemFullRightsTransferBidInstructionAccounts{
			RedemptionAccounts:   decompileRedemptionAccounts(m, i),
			MasterMetadata:       m.Accounts[i.Accounts[17]],
			NewMetadataAuthority: m.Accounts[i.Accounts[18]],
			TransferAuthority:    m.Accounts[i.Accounts[19]],
			SafetyDepositConfig:  m.Accounts[i.Accounts[20]],
		},
		Args: RedeemFullRightsTransferBidInstructionArgs{
			AuctioneerReclaimIndex: reclaimIndex,
		},
	}, nil
}
