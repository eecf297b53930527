package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/curved-dex/curved/testutil/keeper"
	"github.com/curved-dex/curved/x/curve/types"
)

func TestPair_SetGet(t *testing.T) {
	k, _ := keepertest.CurveKeeper(t)

	seeded := seedPair(t, k, "SXA", "1000.0000 USDT@tethertether", "1000.000000 USN@danchortoken", 100)

	got, err := k.GetPair("SXA")
	require.NoError(t, err)
	require.Equal(t, seeded, *got)
	require.True(t, k.HasPair("SXA"))

	_, err = k.GetPair("SXZ")
	require.ErrorIs(t, err, types.ErrPairNotFound)
	require.False(t, k.HasPair("SXZ"))
}

func TestPair_Delete(t *testing.T) {
	k, _ := keepertest.CurveKeeper(t)
	seedPair(t, k, "SXA", "1000.0000 USDT@tethertether", "1000.000000 USN@danchortoken", 100)

	require.NoError(t, k.DeletePair("SXA"))
	require.False(t, k.HasPair("SXA"))

	// the reserve index goes with it
	_, err := k.FindPairID("USDT", "USN")
	require.ErrorIs(t, err, types.ErrPairNotFound)
}

func TestPair_IterateAscending(t *testing.T) {
	k, _ := keepertest.CurveKeeper(t)
	seedPair(t, k, "SXB", "1000.000000 USN@danchortoken", "1000.0000 DAI@daitokenmint", 100)
	seedPair(t, k, "SXA", "1000.0000 USDT@tethertether", "1000.000000 USN@danchortoken", 100)

	pairs, err := k.GetAllPairs()
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.Equal(t, types.SymbolCode("SXA"), pairs[0].ID)
	require.Equal(t, types.SymbolCode("SXB"), pairs[1].ID)
}

func TestCreatePair_Valid(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	ledger.AddSupply("tethertether", asset(t, "1000000.0000 USDT"))
	ledger.AddSupply("danchortoken", asset(t, "1000000.000000 USN"))

	err := k.CreatePair("SXA",
		ext(t, "1000.0000 USDT@tethertether"),
		ext(t, "1000.000000 USN@danchortoken"),
		100,
	)
	require.NoError(t, err)

	pair, err := k.GetPair("SXA")
	require.NoError(t, err)
	require.Equal(t, uint64(100), pair.Amplifier)
	require.Equal(t, keepertest.Self, pair.Liquidity.Contract)
	require.Equal(t, keepertest.TestClock, pair.LastUpdated)
}

func TestCreatePair_UnequalReserves(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	ledger.AddSupply("tethertether", asset(t, "1000000.0000 USDT"))
	ledger.AddSupply("danchortoken", asset(t, "1000000.000000 USN"))

	err := k.CreatePair("SXA",
		ext(t, "1000.0000 USDT@tethertether"),
		ext(t, "999.000000 USN@danchortoken"),
		100,
	)
	require.ErrorIs(t, err, types.ErrAdminInvariant)
}

func TestCreatePair_IdAliasesReserveSymbol(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	ledger.AddSupply("tethertether", asset(t, "1000000.0000 USDT"))
	ledger.AddSupply("danchortoken", asset(t, "1000000.000000 USN"))

	// an id matching a reserve symbol would shadow that symbol in
	// memo resolution
	err := k.CreatePair("USDT",
		ext(t, "1000.0000 USDT@tethertether"),
		ext(t, "1000.000000 USN@danchortoken"),
		100,
	)
	require.ErrorIs(t, err, types.ErrInvalidPair)
}

func TestCreatePair_UnknownIssuer(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	ledger.AddSupply("danchortoken", asset(t, "1000000.000000 USN"))

	err := k.CreatePair("SXA",
		ext(t, "1000.0000 USDT@tethertether"),
		ext(t, "1000.000000 USN@danchortoken"),
		100,
	)
	require.ErrorIs(t, err, types.ErrAdminInvariant)
}

func TestCreatePair_SupplyPrecisionMismatch(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	// token is actually issued at precision 6, pair declares 4
	ledger.AddSupply("tethertether", asset(t, "1000000.000000 USDT"))
	ledger.AddSupply("danchortoken", asset(t, "1000000.000000 USN"))

	err := k.CreatePair("SXA",
		ext(t, "1000.0000 USDT@tethertether"),
		ext(t, "1000.000000 USN@danchortoken"),
		100,
	)
	require.ErrorIs(t, err, types.ErrAdminInvariant)
}

func TestCreatePair_UpdateAmplifierOnly(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	ledger.AddSupply("tethertether", asset(t, "1000000.0000 USDT"))
	ledger.AddSupply("danchortoken", asset(t, "1000000.000000 USN"))

	reserve0 := ext(t, "1000.0000 USDT@tethertether")
	reserve1 := ext(t, "1000.000000 USN@danchortoken")
	require.NoError(t, k.CreatePair("SXA", reserve0, reserve1, 100))

	// give the pair some history first
	pair, err := k.GetPair("SXA")
	require.NoError(t, err)
	pair.Trades = 7
	require.NoError(t, k.SetPair(pair))

	require.NoError(t, k.CreatePair("SXA", reserve0, reserve1, 450))

	pair, err = k.GetPair("SXA")
	require.NoError(t, err)
	require.Equal(t, uint64(450), pair.Amplifier)
	require.Equal(t, uint64(7), pair.Trades)

	// reserve assets are immutable after creation
	err = k.CreatePair("SXA", reserve0, ext(t, "1000.0000 DAI@daitokenmint"), 450)
	require.ErrorIs(t, err, types.ErrAdminInvariant)
}

func TestCreatePair_DuplicateCombination(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	ledger.AddSupply("tethertether", asset(t, "1000000.0000 USDT"))
	ledger.AddSupply("danchortoken", asset(t, "1000000.000000 USN"))

	reserve0 := ext(t, "1000.0000 USDT@tethertether")
	reserve1 := ext(t, "1000.000000 USN@danchortoken")
	require.NoError(t, k.CreatePair("SXA", reserve0, reserve1, 100))

	err := k.CreatePair("SXB", reserve0, reserve1, 100)
	require.ErrorIs(t, err, types.ErrAdminInvariant)
}

func TestFindPairID_ResolutionOrder(t *testing.T) {
	k, _ := keepertest.CurveKeeper(t)
	seedPair(t, k, "SXA", "1000.0000 USDT@tethertether", "1000.000000 USN@danchortoken", 100)
	seedPair(t, k, "SXB", "1000.0000 EOS@eosio.token", "1000.00000000 BTC@btc.ptokens", 100)

	// input symbol is itself a pair id
	id, err := k.FindPairID("SXA", "USDT")
	require.NoError(t, err)
	require.Equal(t, types.SymbolCode("SXA"), id)

	// memo symbol is a pair id whose reserves include the input
	id, err = k.FindPairID("USDT", "SXA")
	require.NoError(t, err)
	require.Equal(t, types.SymbolCode("SXA"), id)

	// memo symbol is a pair id, but its reserves do not include the
	// input: it cannot hijack resolution
	_, err = k.FindPairID("USDT", "SXB")
	require.ErrorIs(t, err, types.ErrPairNotFound)

	// unordered reserve combination, both directions
	id, err = k.FindPairID("USDT", "USN")
	require.NoError(t, err)
	require.Equal(t, types.SymbolCode("SXA"), id)
	id, err = k.FindPairID("USN", "USDT")
	require.NoError(t, err)
	require.Equal(t, types.SymbolCode("SXA"), id)

	_, err = k.FindPairID("USDT", "USDT")
	require.ErrorIs(t, err, types.ErrSameSymbol)
}
