package auction

import (
	"crypto/ed25519"

	"github.com/code-payments/metaplex-client/pkg/solana"
)

var (
	AuctionPrefix  = []byte("auction")
	ExtendedPrefix = []byte("extended")
	MetadataPrefix = []byte("metadata")
)

type GetAuctionAddressArgs struct {
	Resource ed25519.PublicKey
}

func GetAuctionAddress(args *GetAuctionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		AuctionPrefix,
		PROGRAM_ID,
		args.Resource,
	)
}

type GetAuctionExtendedAddressArgs struct {
	Resource ed25519.PublicKey
}

func GetAuctionExtendedAddress(args *GetAuctionExtendedAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		AuctionPrefix,
		PROGRAM_ID,
		args.Resource,
		ExtendedPrefix,
	)
}

type GetBidderMetadataAddressArgs struct {
	Auction ed25519.PublicKey
	Bidder  ed25519.PublicKey
}

func GetBidderMetadataAddress(args *GetBidderMetadataAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		AuctionPrefix,
		PROGRAM_ID,
		args.Auction,
		args.Bidder,
		MetadataPrefix,
	)
}
