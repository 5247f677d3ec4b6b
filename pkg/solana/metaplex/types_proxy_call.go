package metaplex

import (
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

// ProxyCall names the redemption an auctioneer performs through
// RedeemUnusedWinningConfigItemsAsAuctioneer.
type ProxyCall uint8

const (
	ProxyCallRedeemBid ProxyCall = iota
	ProxyCallRedeemFullRightsTransferBid
)

func (c ProxyCall) String() string {
	switch c {
	case ProxyCallRedeemBid:
		return "redeem_bid"
	case ProxyCallRedeemFullRightsTransferBid:
		return "redeem_full_rights_transfer_bid"
	}
	return "unknown"
}

var proxyCallType = borsh.Enum(
	borsh.UnitVariant("RedeemBid"),
	borsh.UnitVariant("RedeemFullRightsTransferBid"),
)
