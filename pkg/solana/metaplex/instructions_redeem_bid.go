package metaplex

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/metaplex-client/pkg/solana"
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

// RedeemBidArgs is the direct RedeemBid payload, which is only the
// discriminant.
type RedeemBidArgs struct{}

func (a *RedeemBidArgs) Schema() borsh.Schema {
	return instructionHeader
}

func (a *RedeemBidArgs) Values() borsh.Values {
	return borsh.Values{
		borsh.InstructionField: uint8(InstructionTypeRedeemBid),
	}
}

func (a *RedeemBidArgs) Marshal() ([]byte, error) {
	return borsh.Serialize(a)
}

func (a *RedeemBidArgs) Unmarshal(data []byte) error {
	_, err := borsh.DeserializeInstruction(instructionHeader, uint8(InstructionTypeRedeemBid), data)
	return err
}

type RedeemBidInstructionAccounts struct {
	RedemptionAccounts

	TransferAuthority   ed25519.PublicKey
	SafetyDepositConfig ed25519.PublicKey

	// Printing type only. Both or neither must be set.
	MasterEdition   ed25519.PublicKey
	ReservationList ed25519.PublicKey
}

type RedeemBidInstructionArgs struct {
	IsPrintingType bool

	// Set when an auctioneer reclaims an unused winning config item. The
	// instruction is then proxied through
	// RedeemUnusedWinningConfigItemsAsAuctioneer.
	AuctioneerReclaimIndex *uint8
}

// NewRedeemBidInstruction builds a RedeemBid instruction, or its auctioneer
// proxy when args.AuctioneerReclaimIndex is set.
//
// Accounts:
//
//	0.  [WRITE] Auction manager
//	1.  [WRITE] Safety deposit token store
//	2.  [WRITE] Destination
//	3.  [WRITE] Bid redemption
//	4.  [WRITE] Safety deposit box
//	5.  [WRITE] Vault
//	6.  [WRITE] Fraction mint
//	7.  [] Auction
//	8.  [] Bidder metadata
//	9.  [] Bidder
//	10. [SIGNER] Payer
//	11. [] Token program
//	12. [] Vault program
//	13. [] Token metadata program
//	14. [] Store
//	15. [] System program
//	16. [] Rent sysvar
//	17. [] Transfer authority
//	18. [] Safety deposit config
//	19. [WRITE] Master edition (printing type only)
//	20. [WRITE] Reservation list (printing type only)
func NewRedeemBidInstruction(
	accounts *RedeemBidInstructionAccounts,
	args *RedeemBidInstructionArgs,
) (solana.Instruction, error) {
	data, err := redeemBidPayload(args.AuctioneerReclaimIndex)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to encode redeem bid args")
	}

	printing, err := solana.ConditionalAccountGroup(
		args.IsPrintingType,
		solana.NewAccountMeta(accounts.MasterEdition, false),
		solana.NewAccountMeta(accounts.ReservationList, false),
	)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "master edition and reservation list")
	}

	metas := append(
		accounts.metas(),
		solana.NewReadonlyAccountMeta(accounts.TransferAuthority, false),
		solana.NewReadonlyAccountMeta(accounts.SafetyDepositConfig, false),
	)
	metas = append(metas, printing...)

	return solana.NewInstruction(PROGRAM_ID, data, metas...), nil
}

type DecompiledRedeemBid struct {
	RedeemBidInstructionAccounts
	Args RedeemBidInstructionArgs
}

// DecompileRedeemBid extracts a RedeemBid instruction, direct or proxied, from
// a compiled message. IsPrintingType is only reported when the master edition
// and reservation list accounts are present.
func DecompileRedeemBid(m solana.Message, index int) (*DecompiledRedeemBid, error) {
	i, err := compiledInstruction(m, index)
	if err != nil {
		return nil, err
	}

	reclaimIndex, err := decodeRedemptionPayload(i.Data, InstructionTypeRedeemBid, ProxyCallRedeemBid)
	if err != nil {
		if errors.Is(err, ErrInvalidInstructionData) || errors.Is(err, ErrUnexpectedProxyCall) {
			return nil, solana.ErrIncorrectInstruction
		}
		return nil, errors.Wrap(err, "invalid redeem bid args")
	}

	const baseLen = redemptionAccountsLen + 2
	if len(i.Accounts) != baseLen && len(i.Accounts) != baseLen+2 {
		return nil, errors.Wrapf(ErrInvalidInstructionData, "invalid number of accounts: %d", len(i.Accounts))
	}

	v := DecompiledRedeemBid{
		RedeemBidInstructionAccounts: RedeemBidInstructionAccounts{
			RedemptionAccounts:  decompileRedemptionAccounts(m, i),
			TransferAuthority:   m.Accounts[i.Accounts[17]],
			SafetyDepositConfig: m.Accounts[i.Accounts[18]],
		},
		Args: RedeemBidInstructionArgs{
			AuctioneerReclaimIndex: reclaimIndex,
		},
	}
	if len(i.Accounts) == baseLen+2 {
		v.MasterEdition = m.Accounts[i.Accounts[19]]
		v.ReservationList = m.Accounts[i.Accounts[20]]
		v.Args.IsPrintingType = true
	}
	return &v, nil
}
