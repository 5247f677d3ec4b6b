package auction

import (
	"encoding/binary"

	"github.com/code-payments/metaplex-client/pkg/solana/borsh"
)

type PriceFloorType uint8

const (
	PriceFloorTypeNone PriceFloorType = iota
	PriceFloorTypeMinimum
	PriceFloorTypeBlindedPrice
)

const PriceFloorHashLength = 32

var priceFloorSchema = borsh.NewSchema(
	borsh.NewField("type", borsh.Enum(
		borsh.UnitVariant("None"),
		borsh.UnitVariant("Minimum"),
		borsh.UnitVariant("BlindedPrice"),
	)),
	borsh.NewField("hash", borsh.FixedBytes(PriceFloorHashLength)),
)

// PriceFloor is the reserve for an auction. The 32 byte hash carries the
// blinded price hash, or for PriceFloorTypeMinimum the minimum price as a
// little endian u64 in its first 8 bytes.
type PriceFloor struct {
	Type PriceFloorType
	Hash [PriceFloorHashLength]byte
}

func NewNoPriceFloor() PriceFloor {
	return PriceFloor{Type: PriceFloorTypeNone}
}

func NewMinimumPriceFloor(minPrice uint64) PriceFloor {
	p := PriceFloor{Type: PriceFloorTypeMinimum}
	binary.LittleEndian.PutUint64(p.Hash[:8], minPrice)
	return p
}

func NewBlindedPriceFloor(hash [PriceFloorHashLength]byte) PriceFloor {
	return PriceFloor{Type: PriceFloorTypeBlindedPrice, Hash: hash}
}

// MinPrice returns the minimum price of a PriceFloorTypeMinimum floor.
func (p PriceFloor) MinPrice() (uint64, bool) {
	if p.Type != PriceFloorTypeMinimum {
		return 0, false
	}
	return binary.LittleEndian.Uint64(p.Hash[:8]), true
}

func (p PriceFloor) Schema() borsh.Schema {
	return priceFloorSchema
}

func (p PriceFloor) Values() borsh.Values {
	hash := make([]byte, PriceFloorHashLength)
	copy(hash, p.Hash[:])

	return borsh.Values{
		"type": borsh.EnumValue{Variant: uint8(p.Type)},
		"hash": hash,
	}
}

func priceFloorFromValues(values borsh.Values) (PriceFloor, error) {
	kind, err := values.Enum("type")
	if err != nil {
		return PriceFloor{}, err
	}
	hash, err := values.Bytes("hash")
	if err != nil {
		return PriceFloor{}, err
	}

	p := PriceFloor{Type: PriceFloorType(kind.Variant)}
	copy(p.Hash[:], hash)
	return p, nil
}
