package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/curved-dex/curved/testutil/keeper"
	"github.com/curved-dex/curved/x/curve/keeper"
	"github.com/curved-dex/curved/x/curve/types"
)

func ext(t *testing.T, s string) types.ExtendedAsset {
	t.Helper()
	ea, ok := types.ParseExtendedAsset(s)
	require.True(t, ok, s)
	return ea
}

func asset(t *testing.T, s string) types.Asset {
	t.Helper()
	a, ok := types.ParseAsset(s)
	require.True(t, ok, s)
	return a
}

// seedPair writes a pair directly, bypassing the creation invariants.
// Tests that need imbalanced or historical pool states use this.
func seedPair(t *testing.T, k *keeper.Keeper, id types.SymbolCode, res0, res1 string, amplifier uint64) types.Pair {
	t.Helper()
	pair := types.NewPair(id, ext(t, res0), ext(t, res1), amplifier, keepertest.Self, keepertest.TestClock)
	require.NoError(t, k.SetPair(&pair))
	return pair
}

// seedStableWorld registers two deep balanced pools, USDT/USN and
// USN/DAI, together with the ledger supplies behind them.
func seedStableWorld(t *testing.T, k *keeper.Keeper, ledger *keepertest.Ledger) {
	t.Helper()
	ledger.AddSupply("tethertether", asset(t, "10000000.0000 USDT"))
	ledger.AddSupply("danchortoken", asset(t, "10000000.000000 USN"))
	ledger.AddSupply("daitokenmint", asset(t, "10000000.0000 DAI"))

	seedPair(t, k, "SXA", "100000.0000 USDT@tethertether", "100000.000000 USN@danchortoken", 100)
	seedPair(t, k, "SXB", "100000.000000 USN@danchortoken", "100000.0000 DAI@daitokenmint", 100)
}
