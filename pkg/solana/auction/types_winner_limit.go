package auction

import (
	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

type WinnerLimitType uint8

const (
	WinnerLimitTypeUnlimited WinnerLimitType = iota
	WinnerLimitTypeCapped
)

var winnerLimitSchema = borsh.NewSchema(
	borsh.NewField("type", borsh.Enum(
		borsh.UnitVariant("Unlimited"),
		borsh.UnitVariant("Capped"),
	)),
	borsh.NewField("usize", borsh.U64()),
)

// WinnerLimit caps how many bids can win an auction. Usize is only
// meaningful for WinnerLimitTypeCapped but is always on the wire.
type WinnerLimit struct {
	Type  WinnerLimitType
	Usize uint64
}

func NewUnlimitedWinnerLimit() WinnerLimit {
	return WinnerLimit{Type: WinnerLimitTypeUnlimited}
}

func NewCappedWinnerLimit(winners uint64) WinnerLimit {
	return WinnerLimit{Type: WinnerLimitTypeCapped, Usize: winners}
}

func (l WinnerLimit) Schema() borsh.Schema {
	return winnerLimitSchema
}

func (l WinnerLimit) Values() borsh.Values {
	return borsh.Values{
		"type":  borsh.EnumValue{Variant: uint8(l.Type)},
		"usize": l.Usize,
	}
}

func winnerLimitFromValues(values borsh.Values) (WinnerLimit, error) {
	kind, err := values.Enum("type")
	if err != nil {
		return WinnerLimit{}, err
	}
	usize, err := values.Uint64("usize")
	if err != nil {
		return WinnerLimit{}, err
	}
	return WinnerLimit{Type: WinnerLimitType(kind.Variant), Usize: usize}, nil
}
