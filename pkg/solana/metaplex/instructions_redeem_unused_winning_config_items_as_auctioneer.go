package metaplex

import (
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

var redeemUnusedWinningConfigItemsAsAuctioneerSchema = borsh.MustCompose(
	instructionHeader,
	borsh.NewSchema(
		borsh.NewField("winningConfigItemIndex", borsh.U8()),
		borsh.NewField("proxyCall", proxyCallType),
	),
)

// RedeemUnusedWinningConfigItemsAsAuctioneerArgs wraps a redemption so that
// an authorized auctioneer can reclaim the winning config item at
// WinningConfigItemIndex. It reuses the accounts of the proxied call.
type RedeemUnusedWinningConfigItemsAsAuctioneerArgs struct {
	WinningConfigItemIndex uint8
	ProxyCall              ProxyCall
}

func (a *RedeemUnusedWinningConfigItemsAsAuctioneerArgs) Schema() borsh.Schema {
	return redeemUnusedWinningConfigItemsAsAuctioneerSchema
}

func (a *RedeemUnusedWinningConfigItemsAsAuctioneerArgs) Values() borsh.Values {
	return borsh.Values{
		borsh.InstructionField:   uint8(InstructionTypeRedeemUnusedWinningConfigItemsAsAuctioneer),
		"winningConfigItemIndex": a.WinningConfigItemIndex,
		"proxyCall":              borsh.EnumValue{Variant: uint8(a.ProxyCall)},
	}
}

func (a *RedeemUnusedWinningConfigItemsAsAuctioneerArgs) Marshal() ([]byte, error) {
	return borsh.Serialize(a)
}

func (a *RedeemUnusedWinningConfigItemsAsAuctioneerArgs) Unmarshal(data []byte) error {
	values, err := borsh.DeserializeInstruction(
		redeemUnusedWinningConfigItemsAsAuctioneerSchema,
		uint8(InstructionTypeRedeemUnusedWinningConfigItemsAsAuctioneer),
		data,
	)
	if err != nil {
		return err
	}

	index, err := values.Uint8("winningConfigItemIndex")
	if err != nil {
		return err
	}
	call, err := values.Enum("proxyCall")
	if err != nil {
		return err
	}

	a.WinningConfigItemIndex = index
	a.ProxyCall = ProxyCall(call.Variant)
	return nil
}
