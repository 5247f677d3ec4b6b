package auction

type InstructionType uint8

const (
	InstructionTypeCancelBid InstructionType = iota
	InstructionTypeCreateAuction
	InstructionTypeClaimBid
	InstructionTypeEndAuction
	InstructionTypeStartAuction
	InstructionTypeSetAuthority
	InstructionTypePlaceBid
	InstructionTypeCreateAuctionV2
)

func (t InstructionType) String() string {
	switch t {
	case InstructionTypeCancelBid:
		return "cancel_bid"
	case InstructionTypeCreateAuction:
		return "create_auction"
	case InstructionTypeClaimBid:
		return "claim_bid"
	case InstructionTypeEndAuction:
		return "end_auction"
	case InstructionTypeStartAuction:
		return "start_auction"
	case InstructionTypeSetAuthority:
		return "set_authority"
	case InstructionTypePlaceBid:
		return "place_bid"
	case InstructionTypeCreateAuctionV2:
		return "create_auction_v2"
	}
	return "unknown"
}
