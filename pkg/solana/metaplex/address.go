package metaplex

import (
	"crypto/ed25519"

	"github.com/code-payments/metaplex-client/pkg/solana"
)

var (
	MetaplexPrefix = []byte("metaplex")
)

type GetBidRedemptionAddressArgs struct {
	Auction        ed25519.PublicKey
	BidderMetadata ed25519.PublicKey
}

func GetBidRedemptionAddress(args *GetBidRedemptionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MetaplexPrefix,
		args.Auction,
		args.BidderMetadata,
	)
}

type GetSafetyDepositConfigAddressArgs struct {
	AuctionManager   ed25519.PublicKey
	SafetyDepositBox ed25519.PublicKey
}

func GetSafetyDepositConfigAddress(args *GetSafetyDepositConfigAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MetaplexPrefix,
		PROGRAM_ID,
		args.AuctionManager,
		args.SafetyDepositBox,
	)
}

type GetAuctionManagerAddressArgs struct {
	Auction ed25519.PublicKey
}

func GetAuctionManagerAddress(args *GetAuctionManagerAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		MetaplexPrefix,
		args.Auction,
	)
}
