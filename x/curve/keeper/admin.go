package keeper

import (
	"github.com/curved-dex/curved/x/curve/types"
)

// CreatePair registers a new pair or updates an existing one.
//
// For a new pair both reserve issuers must be live accounts whose token
// supply matches the declared reserve symbol exactly, and the two
// deposits must be equal once normalized to a common precision, so the
// pool always starts balanced. An existing pair's reserve assets are
// immutable: only the amplifier may change, and trade statistics carry
// over untouched.
func (k Keeper) CreatePair(id types.SymbolCode, reserve0, reserve1 types.ExtendedAsset, amplifier uint64) error {
	candidate := types.NewPair(id, reserve0, reserve1, amplifier, k.self, k.now())
	if err := candidate.Validate(); err != nil {
		return err
	}

	existing, err := k.GetPair(id)
	switch {
	case err == nil:
		return k.updatePair(existing, reserve0, reserve1, amplifier)
	case !types.ErrPairNotFound.Is(err):
		return err
	}

	for _, reserve := range []types.ExtendedAsset{reserve0, reserve1} {
		if !k.accounts.HasAccount(reserve.Contract) {
			return types.ErrAdminInvariant.Wrapf("reserve contract %s does not exist", reserve.Contract)
		}
		supply, err := k.tokens.GetSupply(reserve.Contract, reserve.Quantity.Symbol.Code)
		if err != nil {
			return types.ErrAdminInvariant.Wrapf("no supply for %s on %s", reserve.Quantity.Symbol.Code, reserve.Contract)
		}
		if supply.Symbol != reserve.Quantity.Symbol {
			return types.ErrAdminInvariant.Wrapf(
				"reserve symbol %s does not match token supply %s", reserve.Quantity.Symbol, supply.Symbol)
		}
		if !reserve.Quantity.Amount.IsPositive() {
			return types.ErrAdminInvariant.Wrapf("reserve %s must be positive", reserve.Quantity)
		}
	}

	maxPrecision := candidate.MaxPrecision()
	norm0 := types.ScaleAmount(reserve0.Quantity.Amount, reserve0.Quantity.Symbol.Precision, maxPrecision)
	norm1 := types.ScaleAmount(reserve1.Quantity.Amount, reserve1.Quantity.Symbol.Precision, maxPrecision)
	if !norm0.Equal(norm1) {
		return types.ErrAdminInvariant.Wrapf(
			"initial reserves must match once normalized, got %s vs %s", reserve0.Quantity, reserve1.Quantity)
	}

	if dup, ok := k.getPairIDByReserves(reserve0.Quantity.Symbol.Code, reserve1.Quantity.Symbol.Code); ok {
		return types.ErrAdminInvariant.Wrapf("pair %s already covers this reserve combination", dup)
	}

	if err := k.SetPair(&candidate); err != nil {
		return err
	}
	k.bumpPairCount()
	k.logger.Info("pair created",
		"event", types.EventTypePairUpdated,
		types.AttributeKeyPairID, string(id),
		types.AttributeKeyAmplifier, amplifier,
	)
	if k.hooks != nil {
		k.hooks.AfterPairUpdated(candidate)
	}
	return nil
}

// updatePair applies an amplifier change to an existing pair. Reserve
// descriptors must be restated exactly as registered.
func (k Keeper) updatePair(pair *types.Pair, reserve0, reserve1 types.ExtendedAsset, amplifier uint64) error {
	sameAsset := func(a, b types.ExtendedAsset) bool {
		return a.Quantity.Symbol == b.Quantity.Symbol && a.Contract == b.Contract
	}
	if !sameAsset(pair.Reserve0, reserve0) || !sameAsset(pair.Reserve1, reserve1) {
		return types.ErrAdminInvariant.Wrapf("pair %s reserve assets are immutable", pair.ID)
	}
	if amplifier == 0 {
		return types.ErrInvalidPair.Wrap("amplifier must be positive")
	}

	pair.Amplifier = amplifier
	pair.LastUpdated = k.now()
	if err := k.SetPair(pair); err != nil {
		return err
	}
	k.logger.Info("pair updated",
		"event", types.EventTypePairUpdated,
		types.AttributeKeyPairID, string(pair.ID),
		types.AttributeKeyAmplifier, amplifier,
	)
	if k.hooks != nil {
		k.hooks.AfterPairUpdated(*pair)
	}
	return nil
}

// RemovePair deletes a pair and its reserve index entry.
func (k Keeper) RemovePair(id types.SymbolCode) error {
	if err := k.DeletePair(id); err != nil {
		return err
	}
	k.bumpPairCount()
	k.logger.Info("pair removed", types.AttributeKeyPairID, string(id))
	return nil
}

// Reset clears one state table: "config", "pairs" or "backup".
func (k Keeper) Reset(table string) error {
	switch table {
	case "config":
		return k.ClearConfig()
	case "pairs":
		if err := k.clearPrefix(types.PairKeyPrefix); err != nil {
			return err
		}
		if err := k.clearPrefix(types.PairByReservesKeyPrefix); err != nil {
			return err
		}
		k.metrics.PairsTotal.Set(0)
		k.logger.Info("pairs table cleared")
		return nil
	case "backup":
		if err := k.clearPrefix(types.BackupKeyPrefix); err != nil {
			return err
		}
		if err := k.db.Delete(types.BackupMetaKey); err != nil {
			return err
		}
		k.logger.Info("backup table cleared")
		return nil
	}
	return types.ErrInvalidConfig.Wrapf("unknown table %q", table)
}

func (k Keeper) bumpPairCount() {
	n := 0
	_ = k.IteratePairs(func(types.Pair) bool {
		n++
		return false
	})
	k.metrics.PairsTotal.Set(float64(n))
}
