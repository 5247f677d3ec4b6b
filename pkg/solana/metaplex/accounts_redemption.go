package metaplex

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/metaplex-client/pkg/solana"
)

const redemptionAccountsLen = 17

// RedemptionAccounts are the leading accounts shared by every bid
// redemption instruction.
type RedemptionAccounts struct {
	AuctionManager          ed25519.PublicKey
	SafetyDepositTokenStore ed25519.PublicKey
	Destination             ed25519.PublicKey
	BidRedemption           ed25519.PublicKey
	SafetyDepositBox        ed25519.PublicKey
	Vault                   ed25519.PublicKey
	FractionMint            ed25519.PublicKey
	Auction                 ed25519.PublicKey
	BidderMetadata          ed25519.PublicKey
	Bidder                  ed25519.PublicKey
	Payer                   ed25519.PublicKey
	Store                   ed25519.PublicKey
}

func (a *RedemptionAccounts) metas() []solana.AccountMeta {
	return []solana.AccountMeta{
		solana.NewAccountMeta(a.AuctionManager, false),
		solana.NewAccountMeta(a.SafetyDepositTokenStore, false),
		solana.NewAccountMeta(a.Destination, false),
		solana.NewAccountMeta(a.BidRedemption, false),
		solana.NewAccountMeta(a.SafetyDepositBox, false),
		solana.NewAccountMeta(a.Vault, false),
		solana.NewAccountMeta(a.FractionMint, false),
		solana.NewReadonlyAccountMeta(a.Auction, false),
		solana.NewReadonlyAccountMeta(a.BidderMetadata, false),
		solana.NewReadonlyAccountMeta(a.Bidder, false),
		solana.NewReadonlyAccountMeta(a.Payer, true),
		solana.NewReadonlyAccountMeta(TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(VAULT_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(TOKEN_METADATA_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(a.Store, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY, false),
	}
}

func decompileRedemptionAccounts(m solana.Message, i solana.CompiledInstruction) RedemptionAccounts {
	return RedemptionAccounts{
		AuctionManager:          m.Accounts[i.Accounts[0]],
		SafetyDepositTokenStore: m.Accounts[i.Accounts[1]],
		Destination:             m.Accounts[i.Accounts[2]],
		BidRedemption:           m.Accounts[i.Accounts[3]],
		SafetyDepositBox:        m.Accounts[i.Accounts[4]],
		Vault:                   m.Accounts[i.Accounts[5]],
		FractionMint:            m.Accounts[i.Accounts[6]],
		Auction:                 m.Accounts[i.Accounts[7]],
		BidderMetadata:          m.Accounts[i.Accounts[8]],
		Bidder:                  m.Accounts[i.Accounts[9]],
		Payer:                   m.Accounts[i.Accounts[10]],
		Store:                   m.Accounts[i.Accounts[14]],
	}
}

// compiledInstruction returns the instruction at index after checking it
// targets this program.
func compiledInstruction(m solana.Message, index int) (solana.CompiledInstruction, error) {
	if index < 0 || index >= len(m.Instructions) {
		return solana.CompiledInstruction{}, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]
	if !bytes.Equal(m.Accounts[i.ProgramIndex], PROGRAM_ID) {
		return i, solana.ErrIncorrectProgram
	}
	return i, nil
}
