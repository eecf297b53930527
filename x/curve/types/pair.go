package types

import (
	"time"

	"cosmossdk.io/math"
)

// Pair is a two-asset liquidity pool: two extended-asset reserves, the
// descriptor of the pool's own liquidity token, the curve amplifier and
// running trade statistics. Price0Last/Price1Last are informational
// floating-point snapshots and never feed back into pricing.
type Pair struct {
	ID          SymbolCode    `json:"id"`
	Reserve0    ExtendedAsset `json:"reserve0"`
	Reserve1    ExtendedAsset `json:"reserve1"`
	Liquidity   ExtendedAsset `json:"liquidity"`
	Amplifier   uint64        `json:"amplifier"`
	Price0Last  float64       `json:"price0_last"`
	Price1Last  float64       `json:"price1_last"`
	Volume0     math.Int      `json:"volume0"`
	Volume1     math.Int      `json:"volume1"`
	Trades      uint64        `json:"trades"`
	LastUpdated time.Time     `json:"last_updated"`
}

// NewPair returns a pair with zeroed statistics and a liquidity token
// descriptor issued by self under the pair id.
func NewPair(id SymbolCode, reserve0, reserve1 ExtendedAsset, amplifier uint64, self string, now time.Time) Pair {
	return Pair{
		ID:       id,
		Reserve0: reserve0,
		Reserve1: reserve1,
		Liquidity: ExtendedAsset{
			Quantity: Asset{Amount: math.ZeroInt(), Symbol: Symbol{Code: id, Precision: LiquidityPrecision}},
			Contract: self,
		},
		Amplifier:   amplifier,
		Volume0:     math.ZeroInt(),
		Volume1:     math.ZeroInt(),
		LastUpdated: now,
	}
}

// Validate checks the structural invariants of a stored pair.
func (p Pair) Validate() error {
	if !p.ID.Valid() {
		return ErrInvalidPair.Wrapf("invalid pair id %q", p.ID)
	}
	if !p.Reserve0.Valid() || !p.Reserve1.Valid() {
		return ErrInvalidPair.Wrap("malformed reserve")
	}
	if p.Reserve0.Contract == "" || p.Reserve1.Contract == "" {
		return ErrInvalidPair.Wrap("reserve contract cannot be empty")
	}
	if p.Reserve0.Quantity.Symbol.Code == p.Reserve1.Quantity.Symbol.Code {
		return ErrInvalidPair.Wrap("reserve symbols must differ")
	}
	// a pair id that aliases one of its reserves would let routing
	// resolve memos for that symbol to the wrong pool
	if p.ID == p.Reserve0.Quantity.Symbol.Code || p.ID == p.Reserve1.Quantity.Symbol.Code {
		return ErrInvalidPair.Wrap("pair id must not equal a reserve symbol")
	}
	if p.Reserve0.Quantity.Amount.IsNegative() || p.Reserve1.Quantity.Amount.IsNegative() {
		return ErrInvalidPair.Wrap("reserves must be non-negative")
	}
	if p.Amplifier == 0 {
		return ErrInvalidPair.Wrap("amplifier must be positive")
	}
	if p.Volume0.IsNil() || p.Volume1.IsNil() || p.Volume0.IsNegative() || p.Volume1.IsNegative() {
		return ErrInvalidPair.Wrap("volumes must be non-negative")
	}
	return nil
}

// HasReserveSymbol reports whether either reserve carries the symbol code.
func (p Pair) HasReserveSymbol(code SymbolCode) bool {
	return p.Reserve0.Quantity.Symbol.Code == code || p.Reserve1.Quantity.Symbol.Code == code
}

// OppositeSymbol returns the symbol code on the other side of the pair
// from code, and whether code matched a side at all.
func (p Pair) OppositeSymbol(code SymbolCode) (SymbolCode, bool) {
	switch code {
	case p.Reserve0.Quantity.Symbol.Code:
		return p.Reserve1.Quantity.Symbol.Code, true
	case p.Reserve1.Quantity.Symbol.Code:
		return p.Reserve0.Quantity.Symbol.Code, true
	}
	return "", false
}

// OrientFor matches quantity against the pair's reserves by symbol and
// issuing contract. It returns the in and out reserves, whether the in
// side is reserve0, and whether a side matched at all.
func (p Pair) OrientFor(quantity ExtendedAsset) (resIn, resOut ExtendedAsset, inIsZero, ok bool) {
	if p.Reserve0.Quantity.Symbol == quantity.Quantity.Symbol && p.Reserve0.Contract == quantity.Contract {
		return p.Reserve0, p.Reserve1, true, true
	}
	if p.Reserve1.Quantity.Symbol == quantity.Quantity.Symbol && p.Reserve1.Contract == quantity.Contract {
		return p.Reserve1, p.Reserve0, false, true
	}
	return ExtendedAsset{}, ExtendedAsset{}, false, false
}

// MaxPrecision returns the working precision for pricing: the greater
// of the two reserve precisions.
func (p Pair) MaxPrecision() uint8 {
	p0 := p.Reserve0.Quantity.Symbol.Precision
	p1 := p.Reserve1.Quantity.Symbol.Precision
	if p0 > p1 {
		return p0
	}
	return p1
}
