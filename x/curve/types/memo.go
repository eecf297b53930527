package types

import (
	"strings"

	"cosmossdk.io/math"
)

// TradeIntent is the structured form of an inbound transfer memo.
//
// MinOut carries the target symbol and, when given, the caller's
// minimum acceptable output: a bare symbol code parses to a zero amount
// with precision 0 (target symbol only), an asset string to an exact
// minimum, and an issuer-qualified asset string to a fully qualified
// minimum. Receiver, when non-empty, redirects the outbound transfer.
type TradeIntent struct {
	MinOut   ExtendedAsset
	Receiver string
}

// ParseMemo parses a trade memo of one or two comma-separated fields.
// Receiver existence on the ledger is the caller's check; only the name
// shape is validated here.
func ParseMemo(memo string) (TradeIntent, error) {
	fields := strings.Split(memo, ",")
	if len(fields) > 2 {
		return TradeIntent{}, ErrMalformedMemo.Wrapf("expected 1 or 2 fields, got %d", len(fields))
	}

	var intent TradeIntent
	if len(fields) == 2 {
		receiver := strings.TrimSpace(fields[1])
		if !ValidAccountName(receiver) {
			return TradeIntent{}, ErrMalformedMemo.Wrapf("invalid receiver name %q", receiver)
		}
		intent.Receiver = receiver
	}

	field := strings.TrimSpace(fields[0])
	if code, ok := ParseSymbolCode(field); ok {
		intent.MinOut = ExtendedAsset{Quantity: Asset{Amount: math.ZeroInt(), Symbol: Symbol{Code: code}}}
		return intent, nil
	}
	if qty, ok := ParseAsset(field); ok {
		intent.MinOut = ExtendedAsset{Quantity: qty}
		return intent, nil
	}
	if ext, ok := ParseExtendedAsset(field); ok {
		intent.MinOut = ext
		return intent, nil
	}
	return TradeIntent{}, ErrMalformedMemo.Wrapf("cannot parse %q", field)
}
