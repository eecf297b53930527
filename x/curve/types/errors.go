package types

import (
	"cosmossdk.io/errors"
)

// Curve module sentinel errors
var (
	ErrConfigMissing        = errors.Register(ModuleName, 2, "contract is under maintenance")
	ErrMalformedMemo        = errors.Register(ModuleName, 3, "invalid memo format")
	ErrUnknownRecipient     = errors.Register(ModuleName, 4, "receiver does not exist")
	ErrSameSymbol           = errors.Register(ModuleName, 5, "memo symbol must not match quantity symbol")
	ErrPairNotFound         = errors.Register(ModuleName, 6, "pair does not exist")
	ErrNoRouteFound         = errors.Register(ModuleName, 7, "no trade path found")
	ErrAssetMismatch        = errors.Register(ModuleName, 8, "asset does not match pair reserves")
	ErrSlippageExceeded     = errors.Register(ModuleName, 9, "return is not enough")
	ErrInvariantSolveFailed = errors.Register(ModuleName, 10, "curve invariant did not converge")
	ErrAdminInvariant       = errors.Register(ModuleName, 11, "administrative invariant violation")
	ErrInvalidAmount        = errors.Register(ModuleName, 12, "invalid amount")
	ErrInvalidPair          = errors.Register(ModuleName, 13, "invalid pair")
	ErrInvalidConfig        = errors.Register(ModuleName, 14, "invalid config")
	ErrEmptyState           = errors.Register(ModuleName, 15, "state is empty")
	ErrChecksumMismatch     = errors.Register(ModuleName, 16, "backup checksum mismatch")
	ErrInvalidGenesis       = errors.Register(ModuleName, 17, "invalid genesis state")
)
