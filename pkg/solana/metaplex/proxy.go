package metaplex

import (
	"github.com/pkg/errors"

	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

// Redemptions have two payload shapes. With no reclaim index the direct record
// is encoded. With one, the call is wrapped in
// RedeemUnusedWinningConfigItemsAsAuctioneer naming the direct call. A nil
// index is the only thing that selects the direct shape, so index 0 is still
// proxied.

func redeemBidPayload(auctioneerReclaimIndex *uint8) ([]byte, error) {
	if auctioneerReclaimIndex != nil {
		return (&RedeemUnusedWinningConfigItemsAsAuctioneerArgs{
			WinningConfigItemIndex: *auctioneerReclaimIndex,
			ProxyCall:              ProxyCallRedeemBid,
		}).Marshal()
	}
	return (&RedeemBidArgs{}).Marshal()
}

func redeemFullRightsTransferBidPayload(auctioneerReclaimIndex *uint8) ([]byte, error) {
	if auctioneerReclaimIndex != nil {
		return (&RedeemUnusedWinningConfigItemsAsAuctioneerArgs{
			WinningConfigItemIndex: *auctioneerReclaimIndex,
			ProxyCall:              ProxyCallRedeemFullRightsTransferBid,
		}).Marshal()
	}
	return (&RedeemFullRightsTransferBidArgs{}).Marshal()
}

// decodeRedemptionPayload is the inverse of the payload functions above. It
// returns the reclaim index, or nil for the direct shape.
func decodeRedemptionPayload(data []byte, direct InstructionType, call ProxyCall) (*uint8, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrInvalidInstructionData, "empty instruction data")
	}

	switch InstructionType(data[0]) {
	case direct:
		_, err := borsh.DeserializeInstruction(instructionHeader, uint8(direct), data)
		return nil, err
	case InstructionTypeRedeemUnusedWinningConfigItemsAsAuctioneer:
		var args RedeemUnusedWinningConfigItemsAsAuctioneerArgs
		if err := args.Unmarshal(data); err != nil {
			return nil, err
		}
		if args.ProxyCall != call {
			return nil, errors.Wrapf(ErrUnexpectedProxyCall, "got %s, want %s", args.ProxyCall, call)
		}
		index := args.WinningConfigItemIndex
		return &index, nil
	}

	return nil, errors.Wrapf(ErrInvalidInstructionData, "unexpected instruction %d", data[0])
}
