package keeper

import (
	"fmt"

	"github.com/curved-dex/curved/x/curve/types"
)

// GetPair retrieves a pair by its id. Returns ErrPairNotFound if the
// pair does not exist.
func (k Keeper) GetPair(id types.SymbolCode) (*types.Pair, error) {
	bz, err := k.db.Get(types.PairKey(id))
	if err != nil {
		return nil, fmt.Errorf("GetPair: %w", err)
	}
	if bz == nil {
		return nil, types.ErrPairNotFound.Wrapf("pair %s does not exist", id)
	}

	var pair types.Pair
	if err := k.unmarshal(bz, &pair); err != nil {
		return nil, fmt.Errorf("GetPair: unmarshal pair %s: %w", id, err)
	}
	return &pair, nil
}

// HasPair reports whether a pair with the given id exists.
func (k Keeper) HasPair(id types.SymbolCode) bool {
	ok, err := k.db.Has(types.PairKey(id))
	return err == nil && ok
}

// SetPair saves a pair and maintains the reserve-symbol index.
func (k Keeper) SetPair(pair *types.Pair) error {
	bz, err := k.marshal(pair)
	if err != nil {
		return fmt.Errorf("SetPair: marshal pair %s: %w", pair.ID, err)
	}
	if err := k.db.Set(types.PairKey(pair.ID), bz); err != nil {
		return fmt.Errorf("SetPair: %w", err)
	}
	indexKey := types.PairByReservesKey(pair.Reserve0.Quantity.Symbol.Code, pair.Reserve1.Quantity.Symbol.Code)
	if err := k.db.Set(indexKey, []byte(pair.ID)); err != nil {
		return fmt.Errorf("SetPair: index: %w", err)
	}
	return nil
}

// DeletePair removes a pair and its index entry.
func (k Keeper) DeletePair(id types.SymbolCode) error {
	pair, err := k.GetPair(id)
	if err != nil {
		return err
	}
	if err := k.db.Delete(types.PairKey(id)); err != nil {
		return fmt.Errorf("DeletePair: %w", err)
	}
	indexKey := types.PairByReservesKey(pair.Reserve0.Quantity.Symbol.Code, pair.Reserve1.Quantity.Symbol.Code)
	if err := k.db.Delete(indexKey); err != nil {
		return fmt.Errorf("DeletePair: index: %w", err)
	}
	return nil
}

// IteratePairs walks all pairs in ascending id order.
func (k Keeper) IteratePairs(cb func(pair types.Pair) (stop bool)) error {
	return k.iterate(types.PairKeyPrefix, func(_, value []byte) bool {
		var pair types.Pair
		if err := k.unmarshal(value, &pair); err != nil {
			k.logger.Error("skipping undecodable pair record", "err", err)
			return false
		}
		return cb(pair)
	})
}

// GetAllPairs returns every pair, ordered by id.
func (k Keeper) GetAllPairs() ([]types.Pair, error) {
	var pairs []types.Pair
	err := k.IteratePairs(func(pair types.Pair) bool {
		pairs = append(pairs, pair)
		return false
	})
	return pairs, err
}

// getPairIDByReserves resolves the unordered reserve-symbol index.
func (k Keeper) getPairIDByReserves(a, b types.SymbolCode) (types.SymbolCode, bool) {
	bz, err := k.db.Get(types.PairByReservesKey(a, b))
	if err != nil || bz == nil {
		return "", false
	}
	return types.SymbolCode(bz), true
}

// FindPairID resolves a pair for an input symbol and a memo target
// symbol, in order:
//
//  1. a pair whose id equals the input symbol;
//  2. a pair whose id equals the memo symbol, accepted only if one of
//     its reserve symbols is the input symbol;
//  3. the unordered reserve-symbol combination of the two.
//
// The memo-id guard in step 2 is applied from every caller, so an
// unrelated pair that merely shares the memo's symbol as its id can
// never hijack resolution.
func (k Keeper) FindPairID(symIn, symMemo types.SymbolCode) (types.SymbolCode, error) {
	if symIn == symMemo {
		return "", types.ErrSameSymbol
	}

	if pair, err := k.GetPair(symIn); err == nil {
		return pair.ID, nil
	}
	if pair, err := k.GetPair(symMemo); err == nil && pair.HasReserveSymbol(symIn) {
		return pair.ID, nil
	}
	if id, ok := k.getPairIDByReserves(symIn, symMemo); ok {
		return id, nil
	}
	return "", types.ErrPairNotFound.Wrapf("cannot find pair id for %s and %s", symIn, symMemo)
}
