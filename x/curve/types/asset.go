package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

// SymbolCode is an uppercase alphabetic token symbol, 1 to 7 characters.
type SymbolCode string

// Valid reports whether the symbol code is well formed.
func (sc SymbolCode) Valid() bool {
	if len(sc) == 0 || len(sc) > 7 {
		return false
	}
	for _, r := range sc {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (sc SymbolCode) String() string { return string(sc) }

// ParseSymbolCode parses a bare symbol code such as "USDT".
func ParseSymbolCode(s string) (SymbolCode, bool) {
	sc := SymbolCode(s)
	return sc, sc.Valid()
}

// Symbol pairs a symbol code with its decimal precision.
type Symbol struct {
	Code      SymbolCode `json:"code"`
	Precision uint8      `json:"precision"`
}

// Valid reports whether the symbol is well formed.
func (s Symbol) Valid() bool {
	return s.Code.Valid() && s.Precision <= 18
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// Asset is a fixed-point quantity of a symbol. The amount is the raw
// integer value; one whole unit equals 10^precision raw units.
type Asset struct {
	Amount math.Int `json:"amount"`
	Symbol Symbol   `json:"symbol"`
}

// NewAsset returns an asset from a raw amount and symbol.
func NewAsset(amount int64, sym Symbol) Asset {
	return Asset{Amount: math.NewInt(amount), Symbol: sym}
}

// Valid reports whether the asset has a well-formed symbol and a
// non-nil amount.
func (a Asset) Valid() bool {
	return a.Symbol.Valid() && !a.Amount.IsNil()
}

func (a Asset) String() string {
	if a.Amount.IsNil() {
		return "nil " + a.Symbol.Code.String()
	}
	digits := a.Amount.Abs().String()
	p := int(a.Symbol.Precision)
	for len(digits) <= p {
		digits = "0" + digits
	}
	sign := ""
	if a.Amount.IsNegative() {
		sign = "-"
	}
	if p == 0 {
		return fmt.Sprintf("%s%s %s", sign, digits, a.Symbol.Code)
	}
	return fmt.Sprintf("%s%s.%s %s", sign, digits[:len(digits)-p], digits[len(digits)-p:], a.Symbol.Code)
}

// ParseAsset parses an asset string such as "1.0000 USDT". The number
// of fractional digits determines the precision.
func ParseAsset(s string) (Asset, bool) {
	parts := strings.Split(strings.TrimSpace(s), " ")
	if len(parts) != 2 {
		return Asset{}, false
	}
	code, ok := ParseSymbolCode(parts[1])
	if !ok {
		return Asset{}, false
	}
	num := parts[0]
	neg := strings.HasPrefix(num, "-")
	if neg {
		num = num[1:]
	}
	whole, frac := num, ""
	if i := strings.IndexByte(num, '.'); i >= 0 {
		whole, frac = num[:i], num[i+1:]
	}
	if whole == "" || len(frac) > 18 || !allDigits(whole) || (frac != "" && !allDigits(frac)) {
		return Asset{}, false
	}
	amt, ok := math.NewIntFromString(whole + frac)
	if !ok {
		return Asset{}, false
	}
	if neg {
		amt = amt.Neg()
	}
	return Asset{Amount: amt, Symbol: Symbol{Code: code, Precision: uint8(len(frac))}}, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ExtendedAsset is an asset tagged with its issuing contract account.
type ExtendedAsset struct {
	Quantity Asset  `json:"quantity"`
	Contract string `json:"contract"`
}

// Valid reports whether the quantity is well formed. An empty contract
// is allowed; it means "unqualified" in trade intents.
func (ea ExtendedAsset) Valid() bool {
	return ea.Quantity.Valid()
}

func (ea ExtendedAsset) String() string {
	if ea.Contract == "" {
		return ea.Quantity.String()
	}
	return ea.Quantity.String() + "@" + ea.Contract
}

// ParseExtendedAsset parses an issuer-qualified asset string such as
// "1.0000 USDT@tethertether".
func ParseExtendedAsset(s string) (ExtendedAsset, bool) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return ExtendedAsset{}, false
	}
	contract := strings.TrimSpace(s[i+1:])
	if !ValidAccountName(contract) {
		return ExtendedAsset{}, false
	}
	qty, ok := ParseAsset(s[:i])
	if !ok {
		return ExtendedAsset{}, false
	}
	return ExtendedAsset{Quantity: qty, Contract: contract}, true
}

// ValidAccountName reports whether s is a well-formed ledger account
// name: 1 to 12 characters from [a-z1-5.], not ending with a dot.
func ValidAccountName(s string) bool {
	if len(s) == 0 || len(s) > 12 || strings.HasSuffix(s, ".") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '1' && r <= '5':
		case r == '.':
		default:
			return false
		}
	}
	return true
}

// ScaleAmount rescales a raw amount between two decimal precisions.
// Scaling up multiplies by a power of ten; scaling down divides,
// truncating toward zero.
func ScaleAmount(amount math.Int, from, to uint8) math.Int {
	switch {
	case to > from:
		return amount.Mul(pow10(to - from))
	case to < from:
		return amount.Quo(pow10(from - to))
	default:
		return amount
	}
}

func pow10(n uint8) math.Int {
	return math.NewIntWithDecimal(1, int(n))
}
