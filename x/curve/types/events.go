package types

// Event types for the curve module
const (
	EventTypeTrade         = "curve_trade"
	EventTypePairUpdated   = "curve_pair_updated"
	EventTypeConfigUpdated = "curve_config_updated"
	EventTypeBackup        = "curve_backup"
	EventTypeRestore       = "curve_restore"
)

// Event attribute keys
const (
	AttributeKeyPairID    = "pair_id"
	AttributeKeyPath      = "path"
	AttributeKeySender    = "sender"
	AttributeKeyReceiver  = "receiver"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyFee       = "fee"
	AttributeKeyAmplifier = "amplifier"
	AttributeKeyStatus    = "status"
	AttributeKeyPairs     = "pairs"
)

// CurveHooks receives notifications after state-mutating operations.
// All methods are called after the mutation has been persisted.
type CurveHooks interface {
	AfterTrade(path []SymbolCode, in, out ExtendedAsset)
	AfterPairUpdated(pair Pair)
}
