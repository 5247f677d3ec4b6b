package metaplex

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

func TestRedemptionPayloads(t *testing.T) {
	for _, tc := range []struct {
		name         string
		payload      func(*uint8) ([]byte, error)
		reclaimIndex *uint8
		expected     []byte
	}{
		{"redeem bid direct", redeemBidPayload, nil, []byte{2}},
		{"redeem bid proxy index 0", redeemBidPayload, u8(0), []byte{12, 0, 0}},
		{"redeem bid proxy index 7", redeemBidPayload, u8(7), []byte{12, 7, 0}},
		{"full rights direct", redeemFullRightsTransferBidPayload, nil, []byte{3}},
		{"full rights proxy index 0", redeemFullRightsTransferBidPayload, u8(0), []byte{12, 0, 1}},
		{"full rights proxy index 255", redeemFullRightsTransferBidPayload, u8(255), []byte{12, 255, 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.payload(tc.reclaimIndex)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeRedemptionPayload(t *testing.T) {
	reclaimIndex, err := decodeRedemptionPayload([]byte{2}, InstructionTypeRedeemBid, ProxyCallRedeemBid)
	require.NoError(t, err)
	assert.Nil(t, reclaimIndex)

	reclaimIndex, err = decodeRedemptionPayload([]byte{12, 0, 0}, InstructionTypeRedeemBid, ProxyCallRedeemBid)
	require.NoError(t, err)
	require.NotNil(t, reclaimIndex)
	assert.EqualValues(t, 0, *reclaimIndex)

	reclaimIndex, err = decodeRedemptionPayload([]byte{12, 4, 1}, InstructionTypeRedeemFullRightsTransferBid, ProxyCallRedeemFullRightsTransferBid)
	require.NoError(t, err)
	require.NotNil(t, reclaimIndex)
	assert.EqualValues(t, 4, *reclaimIndex)

	_, err = decodeRedemptionPayload([]byte{12, 4, 1}, InstructionTypeRedeemBid, ProxyCallRedeemBid)
	assert.True(t, errors.Is(err, ErrUnexpectedProxyCall))

	_, err = decodeRedemptionPayload([]byte{3}, InstructionTypeRedeemBid, ProxyCallRedeemBid)
	assert.True(t, errors.Is(err, ErrInvalidInstructionData))

	_, err = decodeRedemptionPayload(nil, InstructionTypeRedeemBid, ProxyCallRedeemBid)
	assert.True(t, errors.Is(err, ErrInvalidInstructionData))

	_, err = decodeRedemptionPayload([]byte{2, 0}, InstructionTypeRedeemBid, ProxyCallRedeemBid)
	assert.True(t, errors.Is(err, borsh.ErrMalformedField))

	_, err = decodeRedemptionPayload([]byte{12, 0, 2}, InstructionTypeRedeemBid, ProxyCallRedeemBid)
	assert.True(t, errors.Is(err, borsh.ErrMalformedField))
}

func TestRedeemUnusedWinningConfigItemsAsAuctioneerArgs(t *testing.T) {
	args := &RedeemUnusedWinningConfigItemsAsAuctioneerArgs{
		WinningConfigItemIndex: 3,
		ProxyCall:              ProxyCallRedeemFullRightsTransferBid,
	}

	data, err := args.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{12, 3, 1}, data)

	var decoded RedeemUnusedWinningConfigItemsAsAuctioneerArgs
	require.NoError(t, decoded.Unmarshal(data))
	assert.Equal(t, *args, decoded)

	args.ProxyCall = 2
	_, err = args.Marshal()
	assert.True(t, errors.Is(err, borsh.ErrInvalidVariant))
}

func u8(v uint8) *uint8 {
	return &v
}
