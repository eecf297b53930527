package keeper

import (
	"cosmossdk.io/errors"

	"github.com/curved-dex/curved/x/curve/types"
)

// TradePath is an ordered list of pair ids to traverse, one hop each.
type TradePath []types.SymbolCode

// FindTradePaths enumerates every viable one- and two-hop path from the
// input symbol to the memo target symbol.
//
// The direct pair, when resolvable, is always first. If the target
// symbol is itself a pair id (a liquidity-token redemption), multihop
// search is suppressed and only the direct path is considered.
// Otherwise every other pair carrying the input symbol is probed for a
// second hop from its opposite side to the target; candidates are
// recorded in registry iteration order, which is ascending pair id and
// therefore deterministic.
func (k Keeper) FindTradePaths(symIn, symMemo types.SymbolCode) ([]TradePath, error) {
	if symIn == symMemo {
		return nil, types.ErrSameSymbol
	}

	var paths []TradePath
	direct, err := k.FindPairID(symIn, symMemo)
	if err == nil {
		paths = append(paths, TradePath{direct})
	} else if !errors.IsOf(err, types.ErrPairNotFound) {
		return nil, err
	}

	// liquidity-token redemption is direct-only
	if k.HasPair(symMemo) {
		return paths, nil
	}

	iterErr := k.IteratePairs(func(pair types.Pair) bool {
		if err == nil && pair.ID == direct {
			return false
		}
		other, ok := pair.OppositeSymbol(symIn)
		if !ok || other == symMemo {
			return false
		}
		second, ferr := k.FindPairID(other, symMemo)
		if ferr != nil {
			return false
		}
		paths = append(paths, TradePath{pair.ID, second})
		return false
	})
	if iterErr != nil {
		return nil, iterErr
	}
	return paths, nil
}

// BestTradePath dry-runs every candidate path and returns the one with
// the strictly greatest output along with that output. Candidates that
// fail to price simply do not win. Ties keep the earliest candidate,
// so the direct path beats an equal two-hop path.
func (k Keeper) BestTradePath(quantity types.ExtendedAsset, paths []TradePath) (TradePath, types.ExtendedAsset, error) {
	var (
		best    TradePath
		bestOut types.ExtendedAsset
	)
	for _, path := range paths {
		out, err := k.ApplyTrade(quantity, path, false)
		if err != nil {
			continue
		}
		if best == nil || out.Quantity.Amount.GT(bestOut.Quantity.Amount) {
			best, bestOut = path, out
		}
	}
	if best == nil {
		return nil, types.ExtendedAsset{}, types.ErrNoRouteFound.Wrap("no viable trade path")
	}
	return best, bestOut, nil
}
