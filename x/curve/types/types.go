package types

const (
	// ModuleName defines the module name
	ModuleName = "curve"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// FeeDenominator is the fixed denominator for basis-point fee rates.
	FeeDenominator = 10000

	// LiquidityPrecision is the decimal precision of pair liquidity tokens.
	LiquidityPrecision = 4
)

// Config status values stamped by administrative and maintenance actions.
const (
	StatusOk     = "ok"
	StatusBackup = "backup"
	StatusCopy   = "copy"
)
