package keeper

import (
	"fmt"
	"strings"
	"time"

	"cosmossdk.io/math"

	"github.com/curved-dex/curved/x/curve/types"
)

// ApplyTrade walks a path hop by hop, pricing each hop against the
// pair's current reserves and carrying the output forward as the next
// hop's input.
//
// With commit=false nothing is written; the walk is the dry run that
// scores a candidate path. With commit=true the identical arithmetic
// runs again and every touched pair is written in a single batch:
// reserves shifted by the exchanged amounts, last prices recomputed,
// inbound volume and trade counter advanced, timestamp refreshed.
// Hops see the in-memory effects of earlier hops either way, so plan
// and commit always agree.
func (k Keeper) ApplyTrade(quantity types.ExtendedAsset, path TradePath, commit bool) (types.ExtendedAsset, error) {
	if len(path) == 0 {
		return types.ExtendedAsset{}, types.ErrNoRouteFound.Wrap("empty trade path")
	}
	cfg, err := k.GetConfig()
	if err != nil {
		return types.ExtendedAsset{}, err
	}

	touched := make(map[types.SymbolCode]*types.Pair, len(path))
	var order []types.SymbolCode

	current := quantity
	for _, id := range path {
		pair, ok := touched[id]
		if !ok {
			pair, err = k.GetPair(id)
			if err != nil {
				return types.ExtendedAsset{}, err
			}
			touched[id] = pair
			order = append(order, id)
		}

		resIn, resOut, inIsZero, ok := pair.OrientFor(current)
		if !ok {
			return types.ExtendedAsset{}, types.ErrAssetMismatch.Wrapf(
				"%s does not match pair %s reserves", current, pair.ID)
		}

		maxPrecision := pair.MaxPrecision()
		amountOut, err := GetAmountOut(
			types.ScaleAmount(current.Quantity.Amount, current.Quantity.Symbol.Precision, maxPrecision),
			types.ScaleAmount(resIn.Quantity.Amount, resIn.Quantity.Symbol.Precision, maxPrecision),
			types.ScaleAmount(resOut.Quantity.Amount, resOut.Quantity.Symbol.Precision, maxPrecision),
			pair.Amplifier,
			cfg.Fee,
		)
		if err != nil {
			return types.ExtendedAsset{}, err
		}

		out := types.ExtendedAsset{
			Quantity: types.Asset{
				Amount: types.ScaleAmount(amountOut, maxPrecision, resOut.Quantity.Symbol.Precision),
				Symbol: resOut.Quantity.Symbol,
			},
			Contract: resOut.Contract,
		}
		if !out.Quantity.Amount.IsPositive() {
			return types.ExtendedAsset{}, types.ErrInvalidAmount.Wrap("insufficient output amount")
		}

		applyHop(pair, current, out, inIsZero, k.now())
		current = out
	}

	if commit {
		batch := k.db.NewBatch()
		defer batch.Close()
		for _, id := range order {
			bz, err := k.marshal(touched[id])
			if err != nil {
				return types.ExtendedAsset{}, fmt.Errorf("ApplyTrade: marshal pair %s: %w", id, err)
			}
			if err := batch.Set(types.PairKey(id), bz); err != nil {
				return types.ExtendedAsset{}, fmt.Errorf("ApplyTrade: %w", err)
			}
		}
		if err := batch.WriteSync(); err != nil {
			return types.ExtendedAsset{}, fmt.Errorf("ApplyTrade: commit: %w", err)
		}
	}
	return current, nil
}

// applyHop mutates the in-memory pair for one exchanged leg: in added
// to its side, out removed from the other, prices and statistics
// refreshed. Reserves cannot go negative because the solver's output
// is strictly below the out reserve.
func applyHop(pair *types.Pair, in, out types.ExtendedAsset, inIsZero bool, now time.Time) {
	if inIsZero {
		pair.Reserve0.Quantity.Amount = pair.Reserve0.Quantity.Amount.Add(in.Quantity.Amount)
		pair.Reserve1.Quantity.Amount = pair.Reserve1.Quantity.Amount.Sub(out.Quantity.Amount)
		pair.Volume0 = pair.Volume0.Add(in.Quantity.Amount)
	} else {
		pair.Reserve1.Quantity.Amount = pair.Reserve1.Quantity.Amount.Add(in.Quantity.Amount)
		pair.Reserve0.Quantity.Amount = pair.Reserve0.Quantity.Amount.Sub(out.Quantity.Amount)
		pair.Volume1 = pair.Volume1.Add(in.Quantity.Amount)
	}

	// informational only, never fed back into pricing
	price := math.LegacyNewDecFromInt(in.Quantity.Amount).
		Quo(math.LegacyNewDecFromInt(out.Quantity.Amount)).MustFloat64()
	if inIsZero {
		pair.Price0Last = 1 / price
		pair.Price1Last = price
	} else {
		pair.Price0Last = price
		pair.Price1Last = 1 / price
	}

	pair.Trades++
	pair.LastUpdated = now
}

// OnIncomingTransfer is the module's single inbound hook: the embedding
// ledger calls it for every transfer delivered to the engine account,
// with the sender already authenticated.
//
// One request gates on the config, parses the memo, routes and scores
// candidate paths, validates the caller's minimum, commits the best
// path and settles the output transfer. Any failure before commit
// leaves the registry untouched.
func (k Keeper) OnIncomingTransfer(sender, contract string, quantity types.Asset, memo string) error {
	// ignore self transfers and memos addressed to the engine itself
	if sender == k.self || memo == k.self {
		return nil
	}

	start := time.Now()
	status := "failed"
	defer func() {
		k.metrics.TradeLatency.Observe(time.Since(start).Seconds())
		k.metrics.TradesTotal.WithLabelValues(status).Inc()
	}()

	if _, err := k.GetConfig(); err != nil {
		return err
	}

	intent, err := types.ParseMemo(memo)
	if err != nil {
		return err
	}
	if intent.Receiver != "" && !k.accounts.HasAccount(intent.Receiver) {
		return types.ErrUnknownRecipient.Wrapf("receiver %s does not exist", intent.Receiver)
	}

	symIn := quantity.Symbol.Code
	symMemo := intent.MinOut.Quantity.Symbol.Code
	if symIn == symMemo {
		return types.ErrSameSymbol
	}

	paths, err := k.FindTradePaths(symIn, symMemo)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return types.ErrNoRouteFound.Wrapf("no path from %s to %s", symIn, symMemo)
	}

	in := types.ExtendedAsset{Quantity: quantity, Contract: contract}
	best, out, err := k.BestTradePath(in, paths)
	if err != nil {
		return err
	}

	if err := validateIntent(intent, out); err != nil {
		return err
	}

	committed, err := k.ApplyTrade(in, best, true)
	if err != nil {
		return err
	}

	receiver := intent.Receiver
	if receiver == "" {
		receiver = sender
	}
	if err := k.tokens.Transfer(k.self, receiver, committed, "swap"); err != nil {
		return fmt.Errorf("settle transfer: %w", err)
	}

	status = "success"
	k.metrics.TradeVolume.WithLabelValues(string(symIn)).
		Add(math.LegacyNewDecFromInt(in.Quantity.Amount).MustFloat64())
	if intent.MinOut.Quantity.Amount.IsPositive() {
		slip := math.LegacyNewDecFromInt(committed.Quantity.Amount.Sub(intent.MinOut.Quantity.Amount)).
			Quo(math.LegacyNewDecFromInt(intent.MinOut.Quantity.Amount))
		k.metrics.TradeSlippage.Observe(slip.MustFloat64())
	}
	k.logger.Info("trade settled",
		"event", types.EventTypeTrade,
		types.AttributeKeySender, sender,
		types.AttributeKeyReceiver, receiver,
		types.AttributeKeyPath, pathString(best),
		types.AttributeKeyAmountIn, in.String(),
		types.AttributeKeyAmountOut, committed.String(),
	)
	if k.hooks != nil {
		k.hooks.AfterTrade(best, in, committed)
	}
	return nil
}

// validateIntent checks the resolved output against the caller's
// declared minimum. A bare target symbol (zero amount, no contract)
// passes unconditionally; the memo may then name a pair id rather than
// the output symbol itself.
func validateIntent(intent types.TradeIntent, out types.ExtendedAsset) error {
	if intent.MinOut.Contract != "" && intent.MinOut.Contract != out.Contract {
		return types.ErrSlippageExceeded.Wrap("reserve_out vs memo contract mismatch")
	}
	if intent.MinOut.Quantity.Amount.IsPositive() {
		if intent.MinOut.Quantity.Symbol != out.Quantity.Symbol {
			return types.ErrSlippageExceeded.Wrap("return vs memo symbol precision mismatch")
		}
		if out.Quantity.Amount.LT(intent.MinOut.Quantity.Amount) {
			return types.ErrSlippageExceeded.Wrapf(
				"return %s is below minimum %s", out.Quantity, intent.MinOut.Quantity)
		}
	}
	return nil
}

func pathString(path TradePath) string {
	ids := make([]string, len(path))
	for i, id := range path {
		ids[i] = string(id)
	}
	return strings.Join(ids, ">")
}
