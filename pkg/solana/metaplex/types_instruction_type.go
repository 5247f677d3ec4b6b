package metaplex

type InstructionType uint8

const (
	InstructionTypeInitAuctionManager InstructionType = iota
	InstructionTypeValidateSafetyDepositBox
	InstructionTypeRedeemBid
	InstructionTypeRedeemFullRightsTransferBid
	InstructionTypeRedeemParticipationBid
	InstructionTypeStartAuction
	InstructionTypeClaimBid
	InstructionTypeEmptyPaymentAccount
	InstructionTypeSetStore
	InstructionTypeSetWhitelistedCreator
	InstructionTypeValidateParticipation
	InstructionTypePopulateParticipationPrintingAccount
	InstructionTypeRedeemUnusedWinningConfigItemsAsAuctioneer
	InstructionTypeDecommissionAuctionManager
	InstructionTypeRedeemPrintingV2Bid
)

func (t InstructionType) String() string {
	switch t {
	case InstructionTypeInitAuctionManager:
		return "init_auction_manager"
	case InstructionTypeValidateSafetyDepositBox:
		return "validate_safety_deposit_box"
	case InstructionTypeRedeemBid:
		return "redeem_bid"
	case InstructionTypeRedeemFullRightsTransferBid:
		return "redeem_full_rights_transfer_bid"
	case InstructionTypeRedeemParticipationBid:
		return "redeem_participation_bid"
	case InstructionTypeStartAuction:
		return "start_auction"
	case InstructionTypeClaimBid:
		return "claim_bid"
	case InstructionTypeEmptyPaymentAccount:
		return "empty_payment_account"
	case InstructionTypeSetStore:
		return "set_store"
	case InstructionTypeSetWhitelistedCreator:
		return "set_whitelisted_creator"
	case InstructionTypeValidateParticipation:
		return "validate_participation"
	case InstructionTypePopulateParticipationPrintingAccount:
		return "populate_participation_printing_account"
	case InstructionTypeRedeemUnusedWinningConfigItemsAsAuctioneer:
		return "redeem_unused_winning_config_items_as_auctioneer"
	case InstructionTypeDecommissionAuctionManager:
		return "decommission_auction_manager"
	case InstructionTypeRedeemPrintingV2Bid:
		return "redeem_printing_v2_bid"
	}
	return "unknown"
}
