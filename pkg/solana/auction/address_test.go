package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/metaplex-client/pkg/solana"
)

func TestGetAuctionAddresses(t *testing.T) {
	resource := generateKey(t)

	auction, bump, err := GetAuctionAddress(&GetAuctionAddressArgs{Resource: resource})
	require.NoError(t, err)

	expected, err := solana.CreateProgramAddress(PROGRAM_ID, AuctionPrefix, PROGRAM_ID, resource, []byte{bump})
	require.NoError(t, err)
	assert.EqualValues(t, expected, auction)

	extended, bump, err := GetAuctionExtendedAddress(&GetAuctionExtendedAddressArgs{Resource: resource})
	require.NoError(t, err)

	expected, err = solana.CreateProgramAddress(PROGRAM_ID, AuctionPrefix, PROGRAM_ID, resource, ExtendedPrefix, []byte{bump})
	require.NoError(t, err)
	assert.EqualValues(t, expected, extended)
	assert.NotEqualValues(t, auction, extended)

	bidder := generateKey(t)
	metadata, bump, err := GetBidderMetadataAddress(&GetBidderMetadataAddressArgs{Auction: auction, Bidder: bidder})
	require.NoError(t, err)

	expected, err = solana.CreateProgramAddress(PROGRAM_ID, AuctionPrefix, PROGRAM_ID, auction, bidder, MetadataPrefix, []byte{bump})
	require.NoError(t, err)
	assert.EqualValues(t, expected, metadata)

	again, _, err := GetAuctionAddress(&GetAuctionAddressArgs{Resource: resource})
	require.NoError(t, err)
	assert.EqualValues(t, auction, again)
}
