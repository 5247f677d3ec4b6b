package metaplex

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/metaplex-client/pkg/solana"
)

func TestNewRedeemBidInstruction_Accounts(t *testing.T) {
	accounts := newRedeemBidAccounts(t)

	ixn, err := NewRedeemBidInstruction(accounts, &RedeemBidInstructionArgs{IsPrintingType: true})
	require.NoError(t, err)

	assert.EqualValues(t, PROGRAM_ID, ixn.Program)
	assert.Equal(t, []byte{2}, ixn.Data)

	expected := []solana.AccountMeta{
		solana.NewAccountMeta(accounts.AuctionManager, false),
		solana.NewAccountMeta(accounts.SafetyDepositTokenStore, false),
		solana.NewAccountMeta(accounts.Destination, false),
		solana.NewAccountMeta(accounts.BidRedemption, false),
		solana.NewAccountMeta(accounts.SafetyDepositBox, false),
		solana.NewAccountMeta(accounts.Vault, false),
		solana.NewAccountMeta(accounts.FractionMint, false),
		solana.NewReadonlyAccountMeta(accounts.Auction, false),
		solana.NewReadonlyAccountMeta(accounts.BidderMetadata, false),
		solana.NewReadonlyAccountMeta(accounts.Bidder, false),
		solana.NewReadonlyAccountMeta(accounts.Payer, true),
		solana.NewReadonlyAccountMeta(TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(VAULT_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(TOKEN_METADATA_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(accounts.Store, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY, false),
		solana.NewReadonlyAccountMeta(accounts.TransferAuthority, false),
		solana.NewReadonlyAccountMeta(accounts.SafetyDepositConfig, false),
		solana.NewAccountMeta(accounts.MasterEdition, false),
		solana.NewAccountMeta(accounts.ReservationList, false),
	}
	assertAccounts(t, expected, ixn.Accounts)

	ixn, err = NewRedeemBidInstruction(accounts, &RedeemBidInstructionArgs{})
	require.NoError(t, err)
	assertAccounts(t, expected[:19], ixn.Accounts)
}

func TestNewRedeemBidInstruction_ConditionalGroup(t *testing.T) {
	for _, tc := range []struct {
		name            string
		isPrintingType  bool
		masterEdition   bool
		reservationList bool
		expectedLen     int
		expectedErr     error
	}{
		{"printing with pair", true, true, true, 21, nil},
		{"printing without pair", true, false, false, 19, nil},
		{"printing without master edition", true, false, true, 0, solana.ErrIncompleteConditionalGroup},
		{"printing without reservation list", true, true, false, 0, solana.ErrIncompleteConditionalGroup},
		{"not printing with pair", false, true, true, 19, nil},
		{"not printing with partial pair", false, true, false, 19, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			accounts := newRedeemBidAccounts(t)
			if !tc.masterEdition {
				accounts.MasterEdition = nil
			}
			if !tc.reservationList {
				accounts.ReservationList = nil
			}

			ixn, err := NewRedeemBidInstruction(accounts, &RedeemBidInstructionArgs{IsPrintingType: tc.isPrintingType})
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr))
				assert.Empty(t, ixn.Accounts)
				assert.Empty(t, ixn.Data)
				return
			}

			require.NoError(t, err)
			assert.Len(t, ixn.Accounts, tc.expectedLen)
		})
	}
}

func TestNewRedeemBidInstruction_Dispatch(t *testing.T) {
	accounts := newRedeemBidAccounts(t)

	direct, err := NewRedeemBidInstruction(accounts, &RedeemBidInstructionArgs{IsPrintingType: true})
	require.NoError(t, err)
	proxied, err := NewRedeemBidInstruction(accounts, &RedeemBidInstructionArgs{IsPrintingType: true, AuctioneerReclaimIndex: u8(0)})
	require.NoError(t, err)

	assert.Equal(t, []byte{byte(InstructionTypeRedeemBid)}, direct.Data)
	assert.Equal(t, []byte{byte(InstructionTypeRedeemUnusedWinningConfigItemsAsAuctioneer), 0, byte(ProxyCallRedeemBid)}, proxied.Data)
	assert.Equal(t, direct.Accounts, proxied.Accounts)
	assert.Equal(t, direct.Program, proxied.Program)
}

func TestDecompileRedeemBid(t *testing.T) {
	accounts := newRedeemBidAccounts(t)

	for _, args := range []*RedeemBidInstructionArgs{
		{},
		{IsPrintingType: true},
		{AuctioneerReclaimIndex: u8(0)},
		{IsPrintingType: true, AuctioneerReclaimIndex: u8(9)},
	} {
		ixn, err := NewRedeemBidInstruction(accounts, args)
		require.NoError(t, err)

		b := solana.NewTransactionBuilder(accounts.Payer)
		require.NoError(t, b.Add(ixn))
		txn, err := b.Handoff()
		require.NoError(t, err)

		decompiled, err := DecompileRedeemBid(txn.Message, 0)
		require.NoError(t, err)
		assert.Equal(t, *args, decompiled.Args)
		assert.EqualValues(t, accounts.AuctionManager, decompiled.AuctionManager)
		assert.EqualValues(t, accounts.Payer, decompiled.Payer)
		assert.EqualValues(t, accounts.Store, decompiled.Store)
		assert.EqualValues(t, accounts.TransferAuthority, decompiled.TransferAuthority)
		assert.EqualValues(t, accounts.SafetyDepositConfig, decompiled.SafetyDepositConfig)
		if args.IsPrintingType {
			assert.EqualValues(t, accounts.MasterEdition, decompiled.MasterEdition)
			assert.EqualValues(t, accounts.ReservationList, decompiled.ReservationList)
		} else {
			assert.Nil(t, decompiled.MasterEdition)
			assert.Nil(t, decompiled.ReservationList)
		}

		_, err = DecompileRedeemFullRightsTransferBid(txn.Message, 0)
		assert.Equal(t, solana.ErrIncorrectInstruction, err)
	}
}

func TestDecompileRedeemBid_IncorrectProgram(t *testing.T) {
	payer := generateKey(t)
	txn := solana.NewTransaction(payer, solana.NewInstruction(generateKey(t), []byte{2}))

	_, err := DecompileRedeemBid(txn.Message, 0)
	assert.Equal(t, solana.ErrIncorrectProgram, err)

	_, err = DecompileRedeemBid(txn.Message, 1)
	assert.Error(t, err)
}

func newRedemptionAccounts(t *testing.T) RedemptionAccounts {
	return RedemptionAccounts{
		AuctionManager:          generateKey(t),
		SafetyDepositTokenStore: generateKey(t),
		Destination:             generateKey(t),
		BidRedemption:           generateKey(t),
		SafetyDepositBox:        generateKey(t),
		Vault:                   generateKey(t),
		FractionMint:            generateKey(t),
		Auction:                 generateKey(t),
		BidderMetadata:          generateKey(t),
		Bidder:                  generateKey(t),
		Payer:                   generateKey(t),
		Store:                   generateKey(t),
	}
}

func newRedeemBidAccounts(t *testing.T) *RedeemBidInstructionAccounts {
	return &RedeemBidInstructionAccounts{
		RedemptionAccounts:  newRedemptionAccounts(t),
		TransferAuthority:   generateKey(t),
		SafetyDepositConfig: generateKey(t),
		MasterEdition:       generateKey(t),
		ReservationList:     generateKey(t),
	}
}

func assertAccounts(t *testing.T, expected, actual []solana.AccountMeta) {
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.EqualValues(t, expected[i].PublicKey, actual[i].PublicKey, "account %d", i)
		assert.Equal(t, expected[i].IsSigner, actual[i].IsSigner, "account %d", i)
		assert.Equal(t, expected[i].IsWritable, actual[i].IsWritable, "account %d", i)
	}
}

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub
}
